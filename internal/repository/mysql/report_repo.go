package mysql

import (
	"context"

	"IT_Hub/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

// ListByCountDesc 举报次数多的排在前面
func (r *ReportRepository) ListByCountDesc(ctx context.Context) ([]model.Report, error) {
	var list []model.Report
	err := r.DB.WithContext(ctx).Order("count DESC").Order("id ASC").Find(&list).Error
	return list, err
}

// DeleteByTarget 幂等：没有记录也不报错
func (r *ReportRepository) DeleteByTarget(ctx context.Context, postID string) (int64, error) {
	tx := r.DB.WithContext(ctx).Where("reported_on = ?", postID).Delete(&model.Report{})
	return tx.RowsAffected, tx.Error
}
