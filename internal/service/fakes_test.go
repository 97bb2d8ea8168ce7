package service

import (
	"context"
	"errors"
	"sync"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"
)

type sentMail struct {
	from, to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, from, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{from, to, subject, body})
	return nil
}

type fakePublisher struct {
	events []any
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, _ string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

var errBoom = errors.New("boom")

// racingComments 查询成功但删除时记录已不存在
type racingComments struct {
	CommentRepository
}

func (r racingComments) DeleteByID(context.Context, string) error { return repository.ErrNotFound }

type brokenComments struct{}

func (brokenComments) FindByID(context.Context, string) (*model.Comment, error) { return nil, errBoom }
func (brokenComments) DeleteByID(context.Context, string) error                 { return errBoom }
func (brokenComments) DeleteByQuestion(context.Context, string) (int64, error)  { return 0, errBoom }

// failingCascade 级联删除失败
type failingCascade struct {
	CommentRepository
}

func (failingCascade) DeleteByQuestion(context.Context, string) (int64, error) { return 0, errBoom }

type failingUsers struct{}

func (failingUsers) AdjustContribution(context.Context, string, int) error { return errBoom }

type failingReports struct {
	ReportRepository
}

func (failingReports) DeleteByTarget(context.Context, string) (int64, error) { return 0, errBoom }
