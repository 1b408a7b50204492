package database

import (
	"gorm.io/gorm"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

// SeedAdmin creates the initial admin account when configured and absent.
// Re-running it against an existing database is a no-op.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminSeedEmail == "" || cfg.AdminSeedPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminSeedEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminSeedPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:       "admin",
		Email:          cfg.AdminSeedEmail,
		Password:       hashed,
		Role:           models.RoleAdmin,
		AvatarURL:      models.DefaultAvatarURL,
		AvatarPublicID: models.DefaultAvatarPublicID,
	}
	return db.Create(&admin).Error
}
