package database

import (
	"gorm.io/gorm"

	"github.com/pankajvitaldeveloper/blog-backend/models"
)

// Migrate runs the schema migrations for every model. GORM handles the
// user_favorites join table through the many2many tags on User and Blog.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Category{},
		&models.Contact{},
	)
}
