package models

import (
	"time"
)

type EventTheme struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	IsStandard bool      `json:"is_standard" gorm:"not null;default:false"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateEventThemeRequest struct {
	Name       string  `json:"name" validate:"required"`
	IsStandard bool    `json:"is_standard"`
	ImageURL   *string `json:"image_url"`
}

type UpdateEventThemeRequest struct {
	Name       *string `json:"name"`
	IsStandard *bool   `json:"is_standard"`
	ImageURL   *string `json:"image_url"`
}
