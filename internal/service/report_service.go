package service

import (
	"context"
	"errors"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/pkg"
	"IT_Hub/internal/repository"

	"go.uber.org/zap"
)

const (
	StepAdjustContribution = "adjust-contribution"
	StepCascadeComments    = "cascade-comments"
	StepClearReports       = "clear-reports"
	StepPublishEvent       = "publish-event"
	StepNotifyAuthor       = "notify-author"
)

type ReportService struct {
	locator   *ContentLocator
	comments  CommentRepository
	questions QuestionRepository
	users     UserRepository
	reports   ReportRepository
	notifier  *NotificationService
	events    pkg.EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

type ReportDeps struct {
	Comments  CommentRepository
	Questions QuestionRepository
	Users     UserRepository
	Reports   ReportRepository
	Notifier  *NotificationService
	Events    pkg.EventPublisher
	Log       *zap.Logger
}

func NewReportService(d ReportDeps) *ReportService {
	events := d.Events
	if events == nil {
		events = pkg.NoopPublisher{}
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{
		locator:   NewContentLocator(d.Comments, d.Questions),
		comments:  d.Comments,
		questions: d.Questions,
		users:     d.Users,
		reports:   d.Reports,
		notifier:  d.Notifier,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// ReportedPost 举报记录连同被举报的内容，内容已被删除时 Post 为空
type ReportedPost struct {
	model.Report
	Post *Post `json:"post,omitempty"`
}

// ListReported 举报记录，按举报次数倒序
func (s *ReportService) ListReported(ctx context.Context) ([]ReportedPost, error) {
	list, err := s.reports.ListByCountDesc(ctx)
	if err != nil {
		return nil, pkg.Internal("list reports", err)
	}
	out := make([]ReportedPost, 0, len(list))
	for _, r := range list {
		post, err := s.locator.find(ctx, r.ReportedOn)
		if err != nil {
			return nil, err
		}
		out = append(out, ReportedPost{Report: r, Post: post})
	}
	return out, nil
}

type postStep struct {
	name string
	run  func(ctx context.Context, p *Post) error
}

// Resolve 删除被举报内容。删除成功后的后续步骤各自失败只记录日志，不影响返回结果
func (s *ReportService) Resolve(ctx context.Context, postID string) (*Post, error) {
	post, err := s.locator.Locate(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.remove(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// 并发的另一次处理已删除
			return nil, notReported(postID)
		}
		return nil, pkg.Internal("delete post", err)
	}
	pkg.PostsRemoved.WithLabelValues(string(post.Kind)).Inc()

	for _, step := range s.steps(post) {
		if err := step.run(ctx, post); err != nil {
			pkg.SideEffectFailures.WithLabelValues(step.name).Inc()
			s.log.Warn("post removal step failed",
				zap.String("post_id", post.ID()),
				zap.String("step", step.name),
				zap.Error(err),
			)
		}
	}
	return post, nil
}

func (s *ReportService) remove(ctx context.Context, p *Post) error {
	if p.Kind == PostComment {
		return s.comments.DeleteByID(ctx, p.ID())
	}
	return s.questions.DeleteByID(ctx, p.ID())
}

func (s *ReportService) steps(p *Post) []postStep {
	var steps []postStep
	switch p.Kind {
	case PostComment:
		steps = append(steps, postStep{StepAdjustContribution, s.adjustContribution})
	case PostQuestion:
		steps = append(steps, postStep{StepCascadeComments, s.cascadeComments})
	}
	return append(steps,
		postStep{StepClearReports, s.clearReports},
		postStep{StepPublishEvent, s.publishRemoved},
		postStep{StepNotifyAuthor, s.notifyAuthor},
	)
}

func (s *ReportService) adjustContribution(ctx context.Context, p *Post) error {
	return s.users.AdjustContribution(ctx, p.AuthorID(), -model.CommentRemovalPenalty)
}

func (s *ReportService) cascadeComments(ctx context.Context, p *Post) error {
	n, err := s.comments.DeleteByQuestion(ctx, p.ID())
	if err == nil {
		s.log.Debug("cascade comments removed", zap.String("post_id", p.ID()), zap.Int64("count", n))
	}
	return err
}

func (s *ReportService) clearReports(ctx context.Context, p *Post) error {
	_, err := s.reports.DeleteByTarget(ctx, p.ID())
	return err
}

func (s *ReportService) publishRemoved(ctx context.Context, p *Post) error {
	return s.events.Publish(ctx, p.ID(), pkg.PostRemoved{
		Event:     pkg.EventPostRemoved,
		PostID:    p.ID(),
		Kind:      string(p.Kind),
		AuthorID:  p.AuthorID(),
		RemovedAt: s.now(),
	})
}

func (s *ReportService) notifyAuthor(ctx context.Context, p *Post) error {
	if s.notifier == nil {
		return nil
	}
	to := ""
	if a := p.Author(); a != nil {
		to = a.Email
	}
	return s.notifier.Notify(ctx, to, RemovalSubject(p), RemovalMessage(p))
}
