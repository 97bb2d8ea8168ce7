package pkg

import (
	"context"
	"time"
)

const (
	EventPostRemoved  = "post.removed"
	EventPollCreated  = "poll.created"
	EventPollAdvanced = "poll.advanced"
)

type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

type PostRemoved struct {
	Event     string    `json:"event"`
	PostID    string    `json:"post_id"`
	Kind      string    `json:"kind"`
	AuthorID  string    `json:"author_id"`
	RemovedAt time.Time `json:"removed_at"`
}

type PollChanged struct {
	Event     string    `json:"event"`
	PollID    string    `json:"poll_id"`
	Phase     string    `json:"phase"`
	StartsAt  time.Time `json:"starts_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
