package mapper

import (
	"time"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/model"
)

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		u := a.UpdatedAt
		updatedAt = &u
	}

	e := &entity.Answer{
		Id:            a.Id,
		Content:       a.Content,
		TopicId:       a.TopicId,
		Score:         a.Score,
		IsSelected:    a.IsSelected,
		ReviewComment: a.ReviewComment,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}

	if a.Topic != nil {
		e.Topic = NewTopicMapper().ToEntity(a.Topic)
	}

	return e
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Answer{
		Id:            a.Id,
		Content:       a.Content,
		TopicId:       a.TopicId,
		Score:         a.Score,
		IsSelected:    a.IsSelected,
		ReviewComment: a.ReviewComment,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *AnswerMapper) ToEntities(answers []*model.Answer) []*entity.Answer {
	entities := make([]*entity.Answer, len(answers))
	for i, a := range answers {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
