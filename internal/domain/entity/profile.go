// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state of a profile. It is written only by
// the billing webhook integration; the rest of the system treats it as read-only.
type SubscriptionStatus string

const (
	// SubscriptionInactive means the profile has no paid plan.
	SubscriptionInactive SubscriptionStatus = "inactive"
	// SubscriptionActive means the profile is on the monthly plan.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionActiveAnnual means the profile is on the annual plan.
	SubscriptionActiveAnnual SubscriptionStatus = "active_annual"
)

// Valid reports whether the status is one of the known billing states.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionInactive, SubscriptionActive, SubscriptionActiveAnnual:
		return true
	}

	return false
}

// Entitled reports whether the status permits issuing new feedback links.
func (s SubscriptionStatus) Entitled() bool {
	return s == SubscriptionActive || s == SubscriptionActiveAnnual
}

// DefaultBusinessName is assigned when a profile is first created, before the
// owner has completed business settings.
const DefaultBusinessName = "My Business"

// Profile represents a single business account. One profile owns many
// feedback requests and holds the public review destination customers are
// routed to.
type Profile struct {
	ID                 uuid.UUID          // Primary key, assigned at account creation.
	Email              string             // Login identity, unique.
	PasswordHash       string             // Stores the bcrypt-hashed login password.
	BusinessName       string             // Display name shown to customers on the rate page.
	GoogleReviewURL    string             // Public review destination; empty means not configured yet.
	TermsURL           string             // Optional link to the business's terms page.
	PrivacyURL         string             // Optional link to the business's privacy page.
	RefundURL          string             // Optional link to the business's refund policy page.
	SubscriptionStatus SubscriptionStatus // Billing state, mutated only by the billing integration.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Configured reports whether the profile has the settings required before a
// feedback link may be issued.
func (p *Profile) Configured() bool {
	return p.GoogleReviewURL != ""
}
