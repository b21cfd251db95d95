package mapper

import (
	"time"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/model"
)

type TopicMapper struct {
	answerMapper *AnswerMapper
}

func NewTopicMapper() *TopicMapper {
	return &TopicMapper{
		answerMapper: NewAnswerMapper(),
	}
}

func (m *TopicMapper) ToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	e := &entity.Topic{
		Id:              t.Id,
		Content:         t.Content,
		IsActive:        t.IsActive,
		IsAutoGenerated: t.IsAutoGenerated,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       updatedAt,
	}

	if t.Answers != nil {
		e.Answers = make([]*entity.Answer, len(t.Answers))
		for i := range t.Answers {
			e.Answers[i] = m.answerMapper.ToEntity(&t.Answers[i])
		}
	}

	return e
}

func (m *TopicMapper) ToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Topic{
		Id:              t.Id,
		Content:         t.Content,
		IsActive:        t.IsActive,
		IsAutoGenerated: t.IsAutoGenerated,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *TopicMapper) ToEntities(topics []*model.Topic) []*entity.Topic {
	entities := make([]*entity.Topic, len(topics))
	for i, t := range topics {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
