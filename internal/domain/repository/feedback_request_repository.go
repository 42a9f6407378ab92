package repository

import (
	"context"

	"vendofyx/internal/domain/entity"
	"vendofyx/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for feedback request persistence.
var (
	// ErrRequestNotFound is returned when a feedback request is not found.
	ErrRequestNotFound = errors.New("feedback request not found")
	// ErrAlreadyRated is returned when a rated transition is attempted on a
	// request that already reached its terminal state. The store enforces
	// this with a conditional update so two racing submissions cannot both
	// succeed.
	ErrAlreadyRated = errors.New("feedback request already rated")
)

// FeedbackRequestRepository defines the operations for feedback request
// persistence. State transitions are conditional single-row updates; the
// repository reports a sentinel instead of writing when the guard fails.
type FeedbackRequestRepository interface {
	// Create persists a new pending feedback request.
	Create(ctx context.Context, request *entity.FeedbackRequest) error

	// FindByID retrieves a feedback request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FeedbackRequest, error)

	// FindByOwner retrieves the newest requests for a profile, most recent
	// first, capped at limit.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedbackRequest, error)

	// MarkClicked transitions pending -> clicked. The update is guarded on
	// the current status being pending; when the guard fails no row is
	// written and the method reports clicked=false with a nil error, since
	// repeat opens are expected.
	MarkClicked(ctx context.Context, id uuid.UUID) (clicked bool, err error)

	// MarkRated atomically sets rating, feedback text, and the rated status.
	// The update is guarded on status <> rated; when the request is already
	// rated it returns ErrAlreadyRated and writes nothing, closing the race
	// between simultaneous submissions.
	MarkRated(ctx context.Context, id uuid.UUID, rating int, feedbackText *string) error
}
