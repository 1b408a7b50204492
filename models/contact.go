package models

import "gorm.io/gorm"

// Contact is a write-once record of a public contact-form submission.
type Contact struct {
	gorm.Model
	Name    string `gorm:"type:VARCHAR(255);not null" json:"name"`
	Email   string `gorm:"type:VARCHAR(255);not null" json:"email"`
	Phone   string `gorm:"type:VARCHAR(50)" json:"phone"`
	Message string `gorm:"type:TEXT;not null" json:"message"`
}
