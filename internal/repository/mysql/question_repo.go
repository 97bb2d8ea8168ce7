package mysql

import (
	"context"
	"errors"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

// FindByID 连带查询提问者的姓名和邮箱
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).
		Preload("Questioner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// DeleteByID 硬删除；没有删除任何行时返回 ErrNotFound
func (r *QuestionRepository) DeleteByID(ctx context.Context, id string) error {
	tx := r.DB.WithContext(ctx).Delete(&model.Question{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
