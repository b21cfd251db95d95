package specification

import "gorm.io/gorm"

// ActiveOnly keeps topics whose game round is still open.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// WithAnswers preloads the topic's answers.
// The home page embeds lightweight summaries in creation order; the topic
// detail page wants them ranked by score.
type WithAnswers struct {
	OrderByScore bool
}

func (s WithAnswers) Apply(db *gorm.DB) *gorm.DB {
	if s.OrderByScore {
		return db.Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("score DESC")
		})
	}
	return db.Preload("Answers")
}
