package model

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content       string    `gorm:"type:text;not null"`
	TopicId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Score         int       `gorm:"not null;default:0"`
	IsSelected    bool      `gorm:"not null;default:false"`
	ReviewComment string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	Topic *Topic `gorm:"foreignKey:TopicId"`
}

func (Answer) TableName() string {
	return "answers"
}
