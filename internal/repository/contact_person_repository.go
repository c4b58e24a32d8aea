package repository

import (
	"github.com/festpix/festpix-backend/internal/models"
	"gorm.io/gorm"
)

type ContactPersonRepository struct {
	db *gorm.DB
}

func NewContactPersonRepository(db *gorm.DB) *ContactPersonRepository {
	return &ContactPersonRepository{db: db}
}

func (r *ContactPersonRepository) Create(contact *models.ContactPerson) error {
	return r.db.Create(contact).Error
}

func (r *ContactPersonRepository) GetByID(id uint) (*models.ContactPerson, error) {
	var contact models.ContactPerson
	err := r.db.First(&contact, id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByEventID lists designated contact persons first, then by name.
func (r *ContactPersonRepository) GetByEventID(eventID uint) ([]models.ContactPerson, error) {
	var contacts []models.ContactPerson
	err := r.db.Where("event_id = ?", eventID).
		Order("is_contact_person DESC, name ASC").
		Find(&contacts).Error
	return contacts, err
}

func (r *ContactPersonRepository) Update(contact *models.ContactPerson) error {
	return r.db.Save(contact).Error
}

func (r *ContactPersonRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactPerson{}, id).Error
}
