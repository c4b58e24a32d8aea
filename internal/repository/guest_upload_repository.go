package repository

import (
	"time"

	"github.com/festpix/festpix-backend/internal/models"
	"gorm.io/gorm"
)

type GuestUploadRepository struct {
	db *gorm.DB
}

func NewGuestUploadRepository(db *gorm.DB) *GuestUploadRepository {
	return &GuestUploadRepository{db: db}
}

func (r *GuestUploadRepository) Create(upload *models.GuestUpload) error {
	return r.db.Create(upload).Error
}

func (r *GuestUploadRepository) GetByID(id uint) (*models.GuestUpload, error) {
	var upload models.GuestUpload
	err := r.db.First(&upload, id).Error
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// GetByEventID lists favorited uploads first, newest first within each group.
func (r *GuestUploadRepository) GetByEventID(eventID uint) ([]models.GuestUpload, error) {
	var uploads []models.GuestUpload
	err := r.db.Where("event_id = ?", eventID).
		Order("is_favorited DESC, created_at DESC").
		Find(&uploads).Error
	return uploads, err
}

func (r *GuestUploadRepository) GetAll() ([]models.GuestUpload, error) {
	var uploads []models.GuestUpload
	err := r.db.Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}

// CountRecentByEventAndIP counts uploads from one IP to one event since the
// given instant, boundary inclusive.
func (r *GuestUploadRepository) CountRecentByEventAndIP(eventID uint, uploadIP string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.GuestUpload{}).
		Where("event_id = ? AND upload_ip = ? AND created_at >= ?", eventID, uploadIP, since).
		Count(&count).Error
	return count, err
}

func (r *GuestUploadRepository) Update(upload *models.GuestUpload) error {
	return r.db.Save(upload).Error
}

func (r *GuestUploadRepository) Delete(id uint) error {
	return r.db.Delete(&models.GuestUpload{}, id).Error
}
