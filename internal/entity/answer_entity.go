package entity

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Id            uuid.UUID
	Content       string
	TopicId       uuid.UUID
	Score         int
	IsSelected    bool
	ReviewComment string
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	Topic *Topic
}
