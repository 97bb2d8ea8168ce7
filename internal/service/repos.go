package service

import (
	"context"
	"time"

	"IT_Hub/internal/model"
)

// 服务层依赖的存储接口，mysql / mongo / memory 三种实现

type CommentRepository interface {
	FindByID(ctx context.Context, id string) (*model.Comment, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByQuestion(ctx context.Context, questionID string) (int64, error)
}

type QuestionRepository interface {
	FindByID(ctx context.Context, id string) (*model.Question, error)
	DeleteByID(ctx context.Context, id string) error
}

type UserRepository interface {
	AdjustContribution(ctx context.Context, id string, delta int) error
}

type ReportRepository interface {
	ListByCountDesc(ctx context.Context) ([]model.Report, error)
	DeleteByTarget(ctx context.Context, postID string) (int64, error)
}

type PollRepository interface {
	Create(ctx context.Context, p *model.Poll) error
	FindByID(ctx context.Context, id string) (*model.Poll, error)
	Save(ctx context.Context, p *model.Poll) error
	Find(ctx context.Context, f model.PollFilter) ([]model.Poll, error)
	MarkCompleted(ctx context.Context, now time.Time) (int64, error)
}

type Mailer interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}
