package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID           string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	QuestionerID string    `gorm:"size:36;not null;index" bson:"questioner_id" json:"questionerId"`
	Questioner   *User     `gorm:"foreignKey:QuestionerID" bson:"-" json:"questioner,omitempty"`
	Body         string    `gorm:"type:text;not null" bson:"question" json:"question"`
	CommentIDs   []string  `gorm:"serializer:json" bson:"comments" json:"comments"`
	IsReported   bool      `gorm:"not null;default:false;index" bson:"is_reported" json:"isReported"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

func (q *Question) BeforeCreate(*gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
