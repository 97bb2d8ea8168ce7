package mysql

import (
	"context"
	"errors"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

// FindByID 连带查询评论者的姓名和邮箱
func (r *CommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	err := r.DB.WithContext(ctx).
		Preload("Commenter", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id string) error {
	tx := r.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByQuestion 批量删除问题下的全部评论
func (r *CommentRepository) DeleteByQuestion(ctx context.Context, questionID string) (int64, error) {
	tx := r.DB.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.Comment{})
	return tx.RowsAffected, tx.Error
}
