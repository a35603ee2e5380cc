package config

import (
	"fmt"
	"os"

	"paper-catalog/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection described by the environment
// and prepares the schema.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := SetupDB(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	return db
}

// SetupDB registers the explicit join model and migrates the schema.
// Shared with the test suites, which run it against sqlite.
func SetupDB(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Paper{}, "Authors", &models.PaperAuthor{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Author{}, "Papers", &models.PaperAuthor{}); err != nil {
		return err
	}
	return db.AutoMigrate(&models.Paper{}, &models.Author{}, &models.PaperAuthor{})
}
