package models

import (
	"time"
)

type ContactPerson struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	EventID         uint      `json:"event_id" gorm:"not null;index"`
	Name            string    `json:"name" gorm:"not null"`
	PhoneNumber     *string   `json:"phone_number"`
	Email           *string   `json:"email"`
	IsContactPerson bool      `json:"is_contact_person" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateContactPersonRequest struct {
	EventID         uint    `json:"event_id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	PhoneNumber     *string `json:"phone_number"`
	Email           *string `json:"email" validate:"omitempty,email"`
	IsContactPerson bool    `json:"is_contact_person"`
}

type UpdateContactPersonRequest struct {
	Name            *string `json:"name"`
	PhoneNumber     *string `json:"phone_number"`
	Email           *string `json:"email" validate:"omitempty,email"`
	IsContactPerson *bool   `json:"is_contact_person"`
}
