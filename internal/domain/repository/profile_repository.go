// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vendofyx/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateEmail is returned when creating a profile with an email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error

	// UpdateSubscriptionStatus writes the billing state for a profile.
	// Only the billing integration calls this.
	UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error
}
