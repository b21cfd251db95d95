package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnswerRequest struct {
	Content string `json:"content" validate:"required"`
	TopicId string `json:"topicId" validate:"required"`
}

type SelectAnswerRequest struct {
	Action string `json:"action" validate:"required"`
}

type AnswerResponse struct {
	Id            uuid.UUID      `json:"id"`
	Content       string         `json:"content"`
	TopicId       uuid.UUID      `json:"topicId"`
	Score         int            `json:"score"`
	IsSelected    bool           `json:"isSelected"`
	ReviewComment string         `json:"reviewComment,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
	Topic         *TopicResponse `json:"topic,omitempty"`
}
