package models

import (
	"time"
)

type Event struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OrganizerID         uint      `json:"organizer_id" gorm:"not null;index"`
	Name                string    `json:"name" gorm:"not null"`
	Topic               *string   `json:"topic"`
	TextColor           *string   `json:"text_color"`
	ThemeID             *uint     `json:"theme_id" gorm:"index"`
	CustomThemeImageURL *string   `json:"custom_theme_image_url"`
	EventDate           time.Time `json:"event_date" gorm:"not null"`
	EventTime           *string   `json:"event_time"`
	Address             *string   `json:"address"`
	Postcode            *string   `json:"postcode"`
	City                *string   `json:"city"`
	ThankYouMessage     *string   `json:"thank_you_message"`
	QRCodeToken         string    `json:"qr_code_token" gorm:"unique;not null"`
	IsActive            bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CreateEventRequest struct {
	Name                string    `json:"name" validate:"required"`
	Topic               *string   `json:"topic"`
	TextColor           *string   `json:"text_color"`
	ThemeID             *uint     `json:"theme_id"`
	CustomThemeImageURL *string   `json:"custom_theme_image_url"`
	EventDate           time.Time `json:"event_date" validate:"required"`
	EventTime           *string   `json:"event_time"`
	Address             *string   `json:"address"`
	Postcode            *string   `json:"postcode"`
	City                *string   `json:"city"`
	ThankYouMessage     *string   `json:"thank_you_message"`
}

// Pointer fields: nil means "leave unchanged". ThemeID set to 0 clears
// the theme reference (stores NULL).
type UpdateEventRequest struct {
	Name                *string    `json:"name"`
	Topic               *string    `json:"topic"`
	TextColor           *string    `json:"text_color"`
	ThemeID             *uint      `json:"theme_id"`
	CustomThemeImageURL *string    `json:"custom_theme_image_url"`
	EventDate           *time.Time `json:"event_date"`
	EventTime           *string    `json:"event_time"`
	Address             *string    `json:"address"`
	Postcode            *string    `json:"postcode"`
	City                *string    `json:"city"`
	ThankYouMessage     *string    `json:"thank_you_message"`
	IsActive            *bool      `json:"is_active"`
}
