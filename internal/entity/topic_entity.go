package entity

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	Id              uuid.UUID
	Content         string
	IsActive        bool
	IsAutoGenerated bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time

	Answers []*Answer
}
