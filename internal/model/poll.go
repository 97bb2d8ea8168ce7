package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PhaseInitial = "Initial" // 报名阶段
	PhaseFinal   = "Final"   // 投票阶段
)

type Poll struct {
	ID          string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Topic       string    `gorm:"size:200;not null" bson:"topic" json:"topic"`
	Description string    `gorm:"type:text" bson:"description" json:"description"`
	Restriction string    `gorm:"size:200" bson:"restriction" json:"restriction"`
	Phase       string    `gorm:"size:16;not null;default:Initial;index:idx_phase_expires,priority:1" bson:"phase" json:"phase"`
	IsCompleted bool      `gorm:"not null;default:false;index" bson:"is_completed" json:"isCompleted"`
	StartsAt    time.Time `bson:"starts_at" json:"startsAt"`
	ExpiresAt   time.Time `gorm:"index:idx_phase_expires,priority:2" bson:"expires_at" json:"expiresAt"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

func (p *Poll) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// WindowLocked 当前时间处于报名/投票窗口内时不允许修改
// 另外兼容旧数据中 expiresAt < now < startsAt 的倒置窗口，同样视为锁定
func (p *Poll) WindowLocked(now time.Time) bool {
	if p.ExpiresAt.Before(now) && p.StartsAt.After(now) {
		return true
	}
	return !now.Before(p.StartsAt) && !now.After(p.ExpiresAt)
}

// PollFilter 查询条件，零值字段不参与过滤
type PollFilter struct {
	Phase         string
	ExpiresBefore *time.Time
	Completed     *bool
}
