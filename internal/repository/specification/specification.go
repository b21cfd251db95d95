package specification

import "gorm.io/gorm"

// Specification applies a reusable query constraint to a gorm query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
