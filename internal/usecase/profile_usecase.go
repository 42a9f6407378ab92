// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vendofyx/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a profile. Nil
// fields are left unchanged.
type UpdateProfileInput struct {
	BusinessName    *string `json:"business_name,omitempty"`
	GoogleReviewURL *string `json:"google_review_url,omitempty"`
	TermsURL        *string `json:"terms_url,omitempty"`
	PrivacyURL      *string `json:"privacy_url,omitempty"`
	RefundURL       *string `json:"refund_url,omitempty"`
}
