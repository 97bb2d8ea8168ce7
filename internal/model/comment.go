package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID          string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	QuestionID  string    `gorm:"size:36;not null;index" bson:"question_id" json:"questionId"`
	CommenterID string    `gorm:"size:36;not null;index" bson:"commenter_id" json:"commenterId"`
	Commenter   *User     `gorm:"foreignKey:CommenterID" bson:"-" json:"commenter,omitempty"`
	Body        string    `gorm:"type:text;not null" bson:"answer" json:"answer"`
	IsReported  bool      `gorm:"not null;default:false;index" bson:"is_reported" json:"isReported"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
