package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report 用户对帖子（问题或评论）的举报汇总，按 Count 倒序供管理员审核
type Report struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	ReportedOn string    `gorm:"size:36;not null;uniqueIndex" bson:"reported_on" json:"reportedOn"`
	Count      int       `gorm:"not null;default:1;index" bson:"count" json:"count"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

func (r *Report) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
