package common

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/logger"
)

// LoadEnv reads a .env file if one exists. Missing files are fine;
// real deployments set the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
}

func ConnectDb() *gorm.DB {
	dbFile := os.Getenv("sqlite_db")
	if dbFile == "" {
		logger.Error("sqlite_db not set")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logger.Error("error opening sqlite db", "error", err)
		return nil
	}
	logger.Info("opened sqlite db", "path", dbFile)
	return db
}
