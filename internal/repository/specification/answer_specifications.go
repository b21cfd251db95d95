package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTopicID filters answers belonging to one topic.
type ByTopicID struct {
	TopicID uuid.UUID
}

func (s ByTopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicID)
}

// WithTopic preloads the parent topic reference.
type WithTopic struct{}

func (s WithTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Topic")
}

// OrderByRank sorts the way the answer list is served:
// best score first, newest first among ties.
type OrderByRank struct{}

func (s OrderByRank) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("score DESC").Order("created_at DESC")
}
