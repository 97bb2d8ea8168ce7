package service

import (
	"context"
	"errors"

	"IT_Hub/internal/pkg"
	"IT_Hub/internal/repository"
)

type ContentLocator struct {
	comments  CommentRepository
	questions QuestionRepository
}

func NewContentLocator(comments CommentRepository, questions QuestionRepository) *ContentLocator {
	return &ContentLocator{comments: comments, questions: questions}
}

// Locate 先查评论再查问题，未被举报的内容同样视为不存在
func (l *ContentLocator) Locate(ctx context.Context, postID string) (*Post, error) {
	post, err := l.find(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsReported() {
		return nil, notReported(postID)
	}
	return post, nil
}

// find 不存在时返回 nil, nil
func (l *ContentLocator) find(ctx context.Context, postID string) (*Post, error) {
	c, err := l.comments.FindByID(ctx, postID)
	if err == nil {
		return commentPost(c), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, pkg.Internal("find comment", err)
	}

	q, err := l.questions.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkg.Internal("find question", err)
	}
	return questionPost(q), nil
}

func notReported(postID string) error {
	return pkg.NotFound("No post with id: %s has been reported.", postID)
}
