package mysql

import (
	"context"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// AdjustContribution 原子增减贡献值
func (r *UserRepository) AdjustContribution(ctx context.Context, id string, delta int) error {
	tx := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("contribution", gorm.Expr("contribution + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
