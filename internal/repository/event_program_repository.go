package repository

import (
	"github.com/festpix/festpix-backend/internal/models"
	"gorm.io/gorm"
)

type EventProgramRepository struct {
	db *gorm.DB
}

func NewEventProgramRepository(db *gorm.DB) *EventProgramRepository {
	return &EventProgramRepository{db: db}
}

func (r *EventProgramRepository) Create(program *models.EventProgram) error {
	return r.db.Create(program).Error
}

func (r *EventProgramRepository) GetByID(id uint) (*models.EventProgram, error) {
	var program models.EventProgram
	err := r.db.First(&program, id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// GetByEventID returns programs in guest-facing display order.
func (r *EventProgramRepository) GetByEventID(eventID uint) ([]models.EventProgram, error) {
	var programs []models.EventProgram
	err := r.db.Where("event_id = ?", eventID).Order("order_index ASC").Find(&programs).Error
	return programs, err
}

func (r *EventProgramRepository) Update(program *models.EventProgram) error {
	return r.db.Save(program).Error
}

func (r *EventProgramRepository) Delete(id uint) error {
	return r.db.Delete(&models.EventProgram{}, id).Error
}

// Reorder rewrites order_index so the rows follow the given id sequence.
func (r *EventProgramRepository) Reorder(eventID uint, programIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for idx, programID := range programIDs {
			result := tx.Model(&models.EventProgram{}).
				Where("id = ? AND event_id = ?", programID, eventID).
				Update("order_index", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
