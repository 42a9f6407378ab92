// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). One row per business account.
type ProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	BusinessName       string    `gorm:"type:varchar(100);not null"`
	GoogleReviewURL    string    `gorm:"type:text;not null;default:''"`
	TermsURL           string    `gorm:"type:text;not null;default:''"`
	PrivacyURL         string    `gorm:"type:text;not null;default:''"`
	RefundURL          string    `gorm:"type:text;not null;default:''"`
	SubscriptionStatus string    `gorm:"type:varchar(20);not null;default:'inactive'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	FeedbackRequests []FeedbackRequestModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
