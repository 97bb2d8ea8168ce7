package model

import "time"

const (
	RoleMember = 0
	RoleAdmin  = 1
)

// CommentRemovalPenalty 评论被管理员删除时作者扣除的贡献值
const CommentRemovalPenalty = 4

type User struct {
	ID           string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Name         string    `gorm:"size:64;not null" bson:"name" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:64;not null" bson:"email" json:"email"`
	Role         int       `gorm:"default:0" bson:"role" json:"-"`
	Contribution int       `gorm:"not null;default:0" bson:"contribution" json:"contribution"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
