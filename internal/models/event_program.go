package models

import (
	"time"
)

type EventProgram struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    uint      `json:"event_id" gorm:"not null;index"`
	Topic      string    `json:"topic" gorm:"not null"`
	Time       string    `json:"time" gorm:"not null"`
	OrderIndex int       `json:"order_index" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateEventProgramRequest struct {
	EventID    uint   `json:"event_id" validate:"required"`
	Topic      string `json:"topic" validate:"required"`
	Time       string `json:"time" validate:"required"`
	OrderIndex int    `json:"order_index"`
}

type UpdateEventProgramRequest struct {
	Topic      *string `json:"topic"`
	Time       *string `json:"time"`
	OrderIndex *int    `json:"order_index"`
}

type ReorderProgramsRequest struct {
	ProgramIDs []uint `json:"program_ids" validate:"required,min=1"`
}
