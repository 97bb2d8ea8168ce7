package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/pkg"
	"IT_Hub/internal/repository"

	"go.uber.org/zap"
)

const (
	MinCreateExpireHours  = 0.5
	MinAdvanceExpireHours = 0.5

	MsgCreateInvalid  = "topic, description and expire time should be mentioned and expireTime>0.5"
	MsgAdvanceInvalid = "topic expire time and start time field cannot be empty"
	MsgPollLocked     = "cannot modify this poll, registration is going on"
	MsgPollCompleted  = "cannot modify this poll, voting has already completed"
	MsgPollInVoting   = "cannot modify this poll, it is already in the voting phase"
)

// PollInput 管理员提交的投票参数，时间单位为小时
type PollInput struct {
	Topic           string
	Description     string
	Restriction     string
	ExpireTimeHours *float64
	StartTimeHours  *float64
}

type PollService struct {
	repo   PollRepository
	events pkg.EventPublisher
	log    *zap.Logger
	now    func() time.Time
}

func NewPollService(repo PollRepository, events pkg.EventPublisher, log *zap.Logger) *PollService {
	if events == nil {
		events = pkg.NoopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PollService{repo: repo, events: events, log: log, now: time.Now}
}

// WithClock 替换时间来源
func (s *PollService) WithClock(now func() time.Time) *PollService {
	s.now = now
	return s
}

func (s *PollService) Create(ctx context.Context, in PollInput) (*model.Poll, error) {
	if strings.TrimSpace(in.Topic) == "" || strings.TrimSpace(in.Description) == "" ||
		in.ExpireTimeHours == nil || *in.ExpireTimeHours <= MinCreateExpireHours {
		return nil, pkg.Validation(MsgCreateInvalid)
	}

	now := s.now()
	startsAt, expiresAt := window(now, in)
	p := &model.Poll{
		Topic:       in.Topic,
		Description: in.Description,
		Restriction: in.Restriction,
		Phase:       model.PhaseInitial,
		StartsAt:    startsAt,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, pkg.Internal("create poll", err)
	}
	pkg.PollTransitions.WithLabelValues("created").Inc()
	s.publish(ctx, pkg.EventPollCreated, p)
	return p, nil
}

// AdvanceToVoting 报名结束后由管理员把投票切到 Final 阶段并重设窗口
func (s *PollService) AdvanceToVoting(ctx context.Context, pollID string, in PollInput) (*model.Poll, error) {
	p, err := s.repo.FindByID(ctx, pollID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, pkg.NotFound("no poll with id: %s", pollID)
	}
	if err != nil {
		return nil, pkg.Internal("find poll", err)
	}

	now := s.now()
	if p.IsCompleted {
		return nil, pkg.State(MsgPollCompleted)
	}
	// Final 只能从 Initial 进入一次
	if p.Phase == model.PhaseFinal {
		return nil, pkg.State(MsgPollInVoting)
	}
	if p.WindowLocked(now) {
		return nil, pkg.State(MsgPollLocked)
	}
	if strings.TrimSpace(in.Topic) == "" || in.ExpireTimeHours == nil || *in.ExpireTimeHours < MinAdvanceExpireHours {
		return nil, pkg.Validation(MsgAdvanceInvalid)
	}

	p.StartsAt, p.ExpiresAt = window(now, in)
	p.Topic = in.Topic
	p.Description = in.Description
	p.Restriction = in.Restriction
	p.Phase = model.PhaseFinal
	p.UpdatedAt = now

	if err := s.repo.Save(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, pkg.NotFound("no poll with id: %s", pollID)
		}
		return nil, pkg.Internal("save poll", err)
	}
	pkg.PollTransitions.WithLabelValues("advanced").Inc()
	s.publish(ctx, pkg.EventPollAdvanced, p)
	return p, nil
}

// List phase 为空返回全部
func (s *PollService) List(ctx context.Context, phase string) ([]model.Poll, error) {
	switch phase {
	case "":
		return s.ListAll(ctx)
	case model.PhaseInitial, model.PhaseFinal:
		return s.find(ctx, model.PollFilter{Phase: phase})
	default:
		return nil, pkg.Validation("phase must be Initial or Final")
	}
}

func (s *PollService) ListAll(ctx context.Context) ([]model.Poll, error) {
	return s.find(ctx, model.PollFilter{})
}

// ListUpdateable 报名已截止、等待切换到投票阶段的投票
func (s *PollService) ListUpdateable(ctx context.Context) ([]model.Poll, error) {
	now := s.now()
	return s.find(ctx, model.PollFilter{Phase: model.PhaseInitial, ExpiresBefore: &now})
}

func (s *PollService) ListCompleted(ctx context.Context) ([]model.Poll, error) {
	done := true
	return s.find(ctx, model.PollFilter{Completed: &done})
}

// CompleteElapsed 投票窗口已过的 Final 投票标记为完成
func (s *PollService) CompleteElapsed(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkCompleted(ctx, s.now())
	if err != nil {
		return 0, pkg.Internal("complete polls", err)
	}
	if n > 0 {
		pkg.PollTransitions.WithLabelValues("completed").Add(float64(n))
	}
	return n, nil
}

func (s *PollService) find(ctx context.Context, f model.PollFilter) ([]model.Poll, error) {
	list, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, pkg.Internal("list polls", err)
	}
	if list == nil {
		list = []model.Poll{}
	}
	return list, nil
}

func (s *PollService) publish(ctx context.Context, event string, p *model.Poll) {
	err := s.events.Publish(ctx, p.ID, pkg.PollChanged{
		Event:     event,
		PollID:    p.ID,
		Phase:     p.Phase,
		StartsAt:  p.StartsAt,
		ExpiresAt: p.ExpiresAt,
	})
	if err != nil {
		s.log.Warn("publish poll event failed", zap.String("poll_id", p.ID), zap.String("event", event), zap.Error(err))
	}
}

// window 开始时间缺省或为负时取 0
func window(now time.Time, in PollInput) (time.Time, time.Time) {
	start := 0.0
	if in.StartTimeHours != nil && *in.StartTimeHours > 0 {
		start = *in.StartTimeHours
	}
	startsAt := now.Add(hours(start))
	return startsAt, startsAt.Add(hours(*in.ExpireTimeHours))
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
