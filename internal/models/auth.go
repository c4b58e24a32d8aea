package models

type RegisterRequest struct {
	Username           string  `json:"username" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	Password           string  `json:"password" validate:"required,min=6"`
	Role               string  `json:"role" validate:"omitempty,oneof=event_organizer administrator"`
	SubscriptionStatus *string `json:"subscription_status"`
	UploadRateLimit    *int    `json:"upload_rate_limit" validate:"omitempty,min=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
