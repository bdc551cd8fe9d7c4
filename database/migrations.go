package database

import (
	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/logger"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

func RunMigrations(db *gorm.DB) error {
	logger.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.ContentPage{},
		&models.Post{},
		&models.Category{},
		&models.Hero{},
		&models.FAQ{},
		&models.Setting{},
		&models.Application{},
	)

	if err != nil {
		logger.Error("migration failed", "error", err)
		return err
	}

	logger.Info("migrations completed")
	return nil
}
