package models

import "gorm.io/gorm"

type Blog struct {
	gorm.Model
	Title       string `gorm:"type:VARCHAR(255);not null" json:"title"`
	Description string `gorm:"type:TEXT;not null" json:"description"`

	CategoryID uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	ImageURL      string `gorm:"type:TEXT" json:"-"`
	ImagePublicID string `gorm:"type:VARCHAR(255)" json:"-"`

	// Likes is the legacy counter, kept equal to the user_favorites
	// cardinality on every favorite/unfavorite.
	Likes int64 `gorm:"default:0" json:"likes"`

	LikedBy []*User `gorm:"many2many:user_favorites" json:"-"`
}

func (b *Blog) Image() ImageRef {
	return ImageRef{URL: b.ImageURL, PublicID: b.ImagePublicID}
}
