package repository

import (
	"github.com/festpix/festpix-backend/internal/models"
	"gorm.io/gorm"
)

type EventThemeRepository struct {
	db *gorm.DB
}

func NewEventThemeRepository(db *gorm.DB) *EventThemeRepository {
	return &EventThemeRepository{db: db}
}

func (r *EventThemeRepository) Create(theme *models.EventTheme) error {
	return r.db.Create(theme).Error
}

func (r *EventThemeRepository) GetByID(id uint) (*models.EventTheme, error) {
	var theme models.EventTheme
	err := r.db.First(&theme, id).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *EventThemeRepository) GetAll() ([]models.EventTheme, error) {
	var themes []models.EventTheme
	err := r.db.Order("id ASC").Find(&themes).Error
	return themes, err
}

func (r *EventThemeRepository) GetStandard() ([]models.EventTheme, error) {
	var themes []models.EventTheme
	err := r.db.Where("is_standard = ?", true).Order("id ASC").Find(&themes).Error
	return themes, err
}

func (r *EventThemeRepository) Update(theme *models.EventTheme) error {
	return r.db.Save(theme).Error
}

func (r *EventThemeRepository) Delete(id uint) error {
	return r.db.Delete(&models.EventTheme{}, id).Error
}
