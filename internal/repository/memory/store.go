package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"github.com/google/uuid"
)

// Store 进程内存储，用于本地开发和测试
type Store struct {
	mu        sync.RWMutex
	users     map[string]model.User
	questions map[string]model.Question
	comments  map[string]model.Comment
	reports   map[string]model.Report
	polls     map[string]model.Poll
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]model.User),
		questions: make(map[string]model.Question),
		comments:  make(map[string]model.Comment),
		reports:   make(map[string]model.Report),
		polls:     make(map[string]model.Poll),
	}
}

func (s *Store) Users() *UserRepository         { return &UserRepository{s: s} }
func (s *Store) Questions() *QuestionRepository { return &QuestionRepository{s: s} }
func (s *Store) Comments() *CommentRepository   { return &CommentRepository{s: s} }
func (s *Store) Reports() *ReportRepository     { return &ReportRepository{s: s} }
func (s *Store) Polls() *PollRepository         { return &PollRepository{s: s} }

/*
种子数据
*/

func (s *Store) PutUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[u.ID] = u
	return u
}

func (s *Store) PutQuestion(q model.Question) model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.Questioner = nil
	s.questions[q.ID] = q
	return q
}

// PutComment 同时把评论 id 追加到所属问题
func (s *Store) PutComment(c model.Comment) model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Commenter = nil
	s.comments[c.ID] = c
	if q, ok := s.questions[c.QuestionID]; ok {
		q.CommentIDs = append(append([]string(nil), q.CommentIDs...), c.ID)
		s.questions[q.ID] = q
	}
	return c
}

func (s *Store) PutReport(r model.Report) model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.reports[r.ID] = r
	return r
}

func (s *Store) User(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) CommentCount(questionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.comments {
		if c.QuestionID == questionID {
			n++
		}
	}
	return n
}

func (s *Store) author(id string) *model.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &model.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

type UserRepository struct{ s *Store }

func (r *UserRepository) AdjustContribution(_ context.Context, id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Contribution += delta
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

type QuestionRepository struct{ s *Store }

func (r *QuestionRepository) FindByID(_ context.Context, id string) (*model.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q, ok := r.s.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	q.CommentIDs = append([]string(nil), q.CommentIDs...)
	q.Questioner = r.s.author(q.QuestionerID)
	return &q, nil
}

func (r *QuestionRepository) DeleteByID(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.questions, id)
	return nil
}

type CommentRepository struct{ s *Store }

func (r *CommentRepository) FindByID(_ context.Context, id string) (*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Commenter = r.s.author(c.CommenterID)
	return &c, nil
}

func (r *CommentRepository) DeleteByID(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r *CommentRepository) DeleteByQuestion(_ context.Context, questionID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.comments {
		if c.QuestionID == questionID {
			delete(r.s.comments, id)
			n++
		}
	}
	return n, nil
}

type ReportRepository struct{ s *Store }

func (r *ReportRepository) ListByCountDesc(_ context.Context) ([]model.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Report, 0, len(r.s.reports))
	for _, rep := range r.s.reports {
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ReportRepository) DeleteByTarget(_ context.Context, postID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, rep := range r.s.reports {
		if rep.ReportedOn == postID {
			delete(r.s.reports, id)
			n++
		}
	}
	return n, nil
}

type PollRepository struct{ s *Store }

func (r *PollRepository) Create(_ context.Context, p *model.Poll) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.s.polls[p.ID] = *p
	return nil
}

func (r *PollRepository) FindByID(_ context.Context, id string) (*model.Poll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.polls[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PollRepository) Save(_ context.Context, p *model.Poll) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.polls[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.polls[p.ID] = *p
	return nil
}

func (r *PollRepository) Find(_ context.Context, f model.PollFilter) ([]model.Poll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Poll, 0)
	for _, p := range r.s.polls {
		if f.Phase != "" && p.Phase != f.Phase {
			continue
		}
		if f.ExpiresBefore != nil && !p.ExpiresAt.Before(*f.ExpiresBefore) {
			continue
		}
		if f.Completed != nil && p.IsCompleted != *f.Completed {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PollRepository) MarkCompleted(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, p := range r.s.polls {
		if p.Phase == model.PhaseFinal && p.ExpiresAt.Before(now) && !p.IsCompleted {
			p.IsCompleted = true
			p.UpdatedAt = now
			r.s.polls[id] = p
			n++
		}
	}
	return n, nil
}
