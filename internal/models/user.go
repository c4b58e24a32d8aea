package models

import (
	"time"
)

const (
	RoleEventOrganizer = "event_organizer"
	RoleAdministrator  = "administrator"
)

// Default uploads per IP per hour for new organizers. Applied in the service
// layer, not as a column default: a column default would silently replace an
// explicit limit of 0 on insert.
const DefaultUploadRateLimit = 10

type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Username           string    `json:"username" gorm:"unique;not null"`
	Email              string    `json:"email" gorm:"unique;not null"`
	Password           string    `json:"-" gorm:"not null"`
	Role               string    `json:"role" gorm:"type:varchar(32);not null;default:event_organizer"`
	SubscriptionStatus *string   `json:"subscription_status"`
	IsActive           bool      `json:"is_active" gorm:"not null;default:true"`
	UploadRateLimit    int       `json:"upload_rate_limit" gorm:"not null"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}

type UpdateUserRequest struct {
	Username           *string `json:"username"`
	Email              *string `json:"email" validate:"omitempty,email"`
	SubscriptionStatus *string `json:"subscription_status"`
	IsActive           *bool   `json:"is_active"`
	UploadRateLimit    *int    `json:"upload_rate_limit" validate:"omitempty,min=0"`
}
