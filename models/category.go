package models

import "gorm.io/gorm"

// Category names are unique case-insensitively; the check lives in the
// controller since the unique index on slug already covers the normalized form.
type Category struct {
	gorm.Model
	Name        string `gorm:"type:VARCHAR(100);not null" json:"name"`
	Description string `gorm:"type:TEXT;default:''" json:"description"`
	Slug        string `gorm:"type:VARCHAR(120);uniqueIndex" json:"slug"`
}
