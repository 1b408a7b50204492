package main

import (
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/database"
	"github.com/pankajvitaldeveloper/blog-backend/routes"
	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	utils.SetDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(utils.RedisCtx()).Err(); err != nil {
			log.Printf("Redis unavailable, token blacklist and rate limits disabled: %v", err)
		} else {
			utils.SetRedis(rdb)
		}
	}

	media, err := services.NewCloudinaryService(cfg)
	if err != nil {
		log.Fatalf("Failed to init media service: %v", err)
	}
	mailer := services.NewSMTPMailer(cfg)

	sweeper := services.StartUploadSweeper(cfg.UploadDir)
	defer sweeper.Stop()

	r := routes.SetupRouter(cfg, media, mailer)
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
