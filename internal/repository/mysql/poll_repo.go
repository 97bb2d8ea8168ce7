package mysql

import (
	"context"
	"errors"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"gorm.io/gorm"
)

type PollRepository struct {
	DB *gorm.DB
}

func (r *PollRepository) Create(ctx context.Context, p *model.Poll) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *PollRepository) FindByID(ctx context.Context, id string) (*model.Poll, error) {
	var p model.Poll
	err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save 覆盖写入全部字段
func (r *PollRepository) Save(ctx context.Context, p *model.Poll) error {
	tx := r.DB.WithContext(ctx).Model(&model.Poll{}).Where("id = ?", p.ID).
		Select("topic", "description", "restriction", "phase", "is_completed", "starts_at", "expires_at", "updated_at").
		Updates(p)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PollRepository) Find(ctx context.Context, f model.PollFilter) ([]model.Poll, error) {
	q := r.DB.WithContext(ctx).Model(&model.Poll{})
	if f.Phase != "" {
		q = q.Where("phase = ?", f.Phase)
	}
	if f.ExpiresBefore != nil {
		q = q.Where("expires_at < ?", *f.ExpiresBefore)
	}
	if f.Completed != nil {
		q = q.Where("is_completed = ?", *f.Completed)
	}
	var list []model.Poll
	err := q.Order("created_at ASC").Order("id ASC").Find(&list).Error
	return list, err
}

// MarkCompleted 投票阶段窗口已结束的投票标记为完成
func (r *PollRepository) MarkCompleted(ctx context.Context, now time.Time) (int64, error) {
	tx := r.DB.WithContext(ctx).Model(&model.Poll{}).
		Where("phase = ? AND expires_at < ? AND is_completed = ?", model.PhaseFinal, now, false).
		Updates(map[string]any{"is_completed": true, "updated_at": now})
	return tx.RowsAffected, tx.Error
}
