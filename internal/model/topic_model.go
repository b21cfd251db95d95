package model

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content         string    `gorm:"type:text;not null"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	IsAutoGenerated bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Answers []Answer `gorm:"foreignKey:TopicId;constraint:OnDelete:CASCADE"`
}

func (Topic) TableName() string {
	return "topics"
}
