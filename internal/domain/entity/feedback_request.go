// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the persisted lifecycle state of a feedback request.
// Expiration is a read-time judgment and is never stored as a status.
type RequestStatus string

const (
	// StatusPending means the link was issued but the customer has not opened it.
	StatusPending RequestStatus = "pending"
	// StatusClicked means the customer opened the link at least once.
	StatusClicked RequestStatus = "clicked"
	// StatusRated is terminal: the customer submitted a rating.
	StatusRated RequestStatus = "rated"
)

const (
	// PublicThreshold is the lowest rating that routes a customer to the
	// public review page. Everything below it is captured privately.
	PublicThreshold = 4

	// RatingMin and RatingMax bound an acceptable star rating.
	RatingMin = 1
	RatingMax = 5

	// DefaultLinkTTL is how long an unrated link stays usable.
	DefaultLinkTTL = 7 * 24 * time.Hour
)

// RouteDestination is the outcome of the rating-threshold routing decision.
type RouteDestination string

const (
	// RoutePublicRedirect sends the customer to the business's public review page.
	RoutePublicRedirect RouteDestination = "public_redirect"
	// RoutePrivateCapture retains the rating in the private dashboard inbox.
	RoutePrivateCapture RouteDestination = "private_capture"
)

// FeedbackRequest represents a single customer-specific, single-use rating
// link. It is created pending, becomes clicked the first time the customer
// opens it, and is rated exactly once.
type FeedbackRequest struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`      // The profile this request belongs to.
	CustomerName string        `json:"customer_name"` // Set at creation, immutable thereafter.
	Status       RequestStatus `json:"status"`
	Rating       *int          `json:"rating,omitempty"`        // 1..5, set atomically with the rated transition.
	FeedbackText *string       `json:"feedback_text,omitempty"` // Optional, meaningful for ratings at or below 3.
	CreatedAt    time.Time     `json:"created_at"`              // Expiration anchor.
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ValidRating reports whether rating is an acceptable star value.
func ValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// Route decides the public/private destination for a rating. The threshold is
// a business policy constant, not per-profile configuration.
func Route(rating int) (RouteDestination, bool) {
	if !ValidRating(rating) {
		return "", false
	}
	if rating >= PublicThreshold {
		return RoutePublicRedirect, true
	}

	return RoutePrivateCapture, true
}

// IsExpired reports whether the request is stale at the given instant. A
// rated request never expires regardless of age; it already reached its
// terminal, useful state.
func (r *FeedbackRequest) IsExpired(now time.Time, ttl time.Duration) bool {
	if r.Status == StatusRated {
		return false
	}

	return now.Sub(r.CreatedAt) > ttl
}

// Rated reports whether the request reached its terminal state.
func (r *FeedbackRequest) Rated() bool {
	return r.Status == StatusRated
}
