// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vendofyx/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// IssueLinkInput defines the data required to issue a new feedback link.
type IssueLinkInput struct {
	CustomerName string `json:"customer_name"`
}

// SubmitRatingInput defines the data submitted from the public rate page.
type SubmitRatingInput struct {
	Rating       int     `json:"rating"`
	FeedbackText *string `json:"feedback_text,omitempty"`
}

// --- Output DTOs ---

// IssueLinkOutput returns the persisted request together with the shareable link.
type IssueLinkOutput struct {
	Request *entity.FeedbackRequest
	Link    string
}

// RateView carries everything the public rate page needs to render: the
// request state plus the owner's customer-facing fields. No private owner
// data crosses this boundary.
type RateView struct {
	Request      *entity.FeedbackRequest
	BusinessName string
	TermsURL     string
	PrivacyURL   string
	RefundURL    string
	Expired      bool
}

// SubmitRatingOutput returns the routing decision for a submitted rating.
// RedirectURL is set only for the public destination.
type SubmitRatingOutput struct {
	Destination entity.RouteDestination
	RedirectURL string
}

// FeedbackUsecase defines the interface for the feedback link lifecycle:
// issuing links, serving the public rate page, and recording ratings.
type FeedbackUsecase interface {
	// IssueLink creates a pending feedback request for a customer. Issuance
	// is gated: the owner must have a review URL configured and an entitled
	// subscription.
	IssueLink(ctx context.Context, ownerID uuid.UUID, input IssueLinkInput) (*IssueLinkOutput, error)

	// GetRateView resolves the public rate page for a request and records
	// the first open.
	GetRateView(ctx context.Context, requestID uuid.UUID) (*RateView, error)

	// RecordOpen marks a pending request as clicked. Repeat opens are a no-op.
	RecordOpen(ctx context.Context, requestID uuid.UUID) error

	// SubmitRating records the customer's rating exactly once and decides the
	// public/private route.
	SubmitRating(ctx context.Context, requestID uuid.UUID, input SubmitRatingInput) (*SubmitRatingOutput, error)

	// ListRequests returns the owner's inbox, newest first.
	ListRequests(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedbackRequest, error)

	// GenerateLinkQR renders the rate link of an owned request as a QR PNG.
	GenerateLinkQR(ctx context.Context, ownerID, requestID uuid.UUID) ([]byte, error)
}
