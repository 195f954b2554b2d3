package database

import (
	"fmt"

	"kardash_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет миграцию всех моделей платформы.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.JobApplication{},
		&models.Bot{},
		&models.BotActivity{},
		&models.BotAccount{},
		&models.Notification{},
		&models.DashboardStats{},
	)
	if err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}
	return nil
}
