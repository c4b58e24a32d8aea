package repository

import (
	"github.com/festpix/festpix-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByOrganizer(organizerID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("organizer_id = ?", organizerID).Order("created_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("created_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) GetByToken(token string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("qr_code_token = ?", token).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) TokenExists(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("qr_code_token = ?", token).Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) CountByThemeID(themeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("theme_id = ?", themeID).Count(&count).Error
	return count, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// DeleteCascade removes the event's programs, contacts and uploads before the
// event row itself, all inside one transaction.
func (r *EventRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.GuestUpload{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.ContactPerson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.EventProgram{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}
