package postgres

import (
	"context"
	"time"

	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRequestRepository implements the repository.FeedbackRequestRepository interface.
type feedbackRequestRepository struct {
	db *gorm.DB
}

// NewFeedbackRequestRepository is the constructor for feedbackRequestRepository.
func NewFeedbackRequestRepository(db *gorm.DB) repository.FeedbackRequestRepository {
	return &feedbackRequestRepository{
		db: db,
	}
}

// Create persists a new pending feedback request.
func (repo *feedbackRequestRepository) Create(ctx context.Context, request *entity.FeedbackRequest) error {
	requestM := fromFeedbackRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a feedback request by its unique ID.
func (repo *feedbackRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FeedbackRequest, error) {
	var requestM model.FeedbackRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback request by ID")
	}

	return toFeedbackRequestDomain(&requestM), nil
}

// FindByOwner retrieves the newest requests for a profile, most recent first.
func (repo *feedbackRequestRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedbackRequest, error) {
	var requestMs []model.FeedbackRequestModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&requestMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback requests by owner")
	}

	requests := make([]*entity.FeedbackRequest, 0, len(requestMs))
	for i := range requestMs {
		requests = append(requests, toFeedbackRequestDomain(&requestMs[i]))
	}

	return requests, nil
}

// MarkClicked transitions pending -> clicked. The WHERE clause carries the
// guard, so a request that already moved on is left untouched.
func (repo *feedbackRequestRepository) MarkClicked(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":     string(entity.StatusClicked),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark feedback request clicked")
	}

	// Zero rows means the request is missing or already past pending. Repeat
	// opens are normal, so neither case is an error here.
	return result.RowsAffected > 0, nil
}

// MarkRated atomically applies the terminal transition. The WHERE clause
// excludes already-rated rows, so of two racing submissions exactly one wins.
func (repo *feedbackRequestRepository) MarkRated(ctx context.Context, id uuid.UUID, rating int, feedbackText *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackRequestModel{}).
		Where("id = ? AND status <> ?", id, string(entity.StatusRated)).
		Updates(map[string]any{
			"status":        string(entity.StatusRated),
			"rating":        rating,
			"feedback_text": feedbackText,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark feedback request rated")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.FeedbackRequestModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check feedback request existence")
		}
		if count == 0 {
			return repository.ErrRequestNotFound
		}

		return repository.ErrAlreadyRated
	}

	return nil
}

func toFeedbackRequestDomain(requestM *model.FeedbackRequestModel) *entity.FeedbackRequest {
	return &entity.FeedbackRequest{
		ID:           requestM.ID,
		OwnerID:      requestM.OwnerID,
		CustomerName: requestM.CustomerName,
		Status:       entity.RequestStatus(requestM.Status),
		Rating:       requestM.Rating,
		FeedbackText: requestM.FeedbackText,
		CreatedAt:    requestM.CreatedAt,
		UpdatedAt:    requestM.UpdatedAt,
	}
}

func fromFeedbackRequestDomain(request *entity.FeedbackRequest) *model.FeedbackRequestModel {
	return &model.FeedbackRequestModel{
		ID:           request.ID,
		OwnerID:      request.OwnerID,
		CustomerName: request.CustomerName,
		Status:       string(request.Status),
		Rating:       request.Rating,
		FeedbackText: request.FeedbackText,
		CreatedAt:    request.CreatedAt,
		UpdatedAt:    request.UpdatedAt,
	}
}
