package database

import (
	"fmt"

	"github.com/festpix/festpix-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func New(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.EventTheme{},
		&models.Event{},
		&models.EventProgram{},
		&models.ContactPerson{},
		&models.GuestUpload{},
	); err != nil {
		return err
	}

	return seedStandardThemes(db)
}

// Standard themes guests can pick from; inserted once by name.
func seedStandardThemes(db *gorm.DB) error {
	themes := []models.EventTheme{
		{Name: "Classic White", IsStandard: true},
		{Name: "Garden Party", IsStandard: true},
		{Name: "Golden Hour", IsStandard: true},
		{Name: "Midnight Blue", IsStandard: true},
	}

	for _, theme := range themes {
		var count int64
		db.Model(&models.EventTheme{}).Where("name = ?", theme.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&theme).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
