package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTopicRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateTopicStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// TopicAnswerSummary is the lightweight answer shape embedded in topic lists.
type TopicAnswerSummary struct {
	Id         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	Score      int       `json:"score"`
	IsSelected bool      `json:"isSelected"`
}

type TopicResponse struct {
	Id              uuid.UUID             `json:"id"`
	Content         string                `json:"content"`
	IsActive        bool                  `json:"isActive"`
	IsAutoGenerated bool                  `json:"isAutoGenerated"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       *time.Time            `json:"updatedAt,omitempty"`
	Answers         []*TopicAnswerSummary `json:"answers,omitempty"`
}

// TopicDetailResponse embeds full answers, ordered by score descending.
type TopicDetailResponse struct {
	Id              uuid.UUID         `json:"id"`
	Content         string            `json:"content"`
	IsActive        bool              `json:"isActive"`
	IsAutoGenerated bool              `json:"isAutoGenerated"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
	Answers         []*AnswerResponse `json:"answers"`
}
