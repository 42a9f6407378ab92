package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackRequestModel mirrors the 'feedback_requests' table. One row per
// issued customer link. Status holds only the persisted lifecycle states;
// expiration is derived at read time and never stored.
type FeedbackRequestModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName string    `gorm:"type:varchar(100);not null"`
	Status       string    `gorm:"type:varchar(10);not null;default:'pending';check:status IN ('pending','clicked','rated')"`
	Rating       *int      `gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)"`
	FeedbackText *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackRequestModel) TableName() string {
	return "feedback_requests"
}
