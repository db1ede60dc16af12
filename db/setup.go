package db

import (
	"fmt"
	"os"

	"github.com/VersaceXcodes/eco5/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

// DSNFromEnv prefers DATABASE_URL and falls back to the discrete
// DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME variables.
func DSNFromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Dashboard{},
		&models.ImpactCalculator{},
		&models.ForumThread{},
		&models.Event{},
		&models.Resource{},
		&models.Alert{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
