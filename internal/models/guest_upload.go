package models

import (
	"time"
)

type GuestUpload struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EventID     uint      `json:"event_id" gorm:"not null;index"`
	GuestName   string    `json:"guest_name" gorm:"not null"`
	FileURL     string    `json:"file_url" gorm:"not null"`
	FileName    string    `json:"file_name" gorm:"not null"`
	FileSize    int64     `json:"file_size" gorm:"not null"`
	MimeType    string    `json:"mime_type" gorm:"not null"`
	IsFavorited bool      `json:"is_favorited" gorm:"not null;default:false"`
	UploadIP    *string   `json:"upload_ip" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
}

type GuestUploadRequest struct {
	EventID   uint    `json:"event_id" validate:"required"`
	GuestName string  `json:"guest_name" validate:"required"`
	FileURL   string  `json:"file_url" validate:"required"`
	FileName  string  `json:"file_name" validate:"required"`
	FileSize  int64   `json:"file_size" validate:"min=0"`
	MimeType  string  `json:"mime_type" validate:"required,supported_image"`
	UploadIP  *string `json:"upload_ip"`
}

type UpdateGuestUploadRequest struct {
	IsFavorited *bool `json:"is_favorited"`
}

// Outcome of the per-IP admission check for one event
type RateLimitResult struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

type DownloadResponse struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}
