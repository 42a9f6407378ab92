package postgres

import (
	"context"

	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByEmail retrieves a single profile by its login email.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile entity to the storage.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile entity in the storage.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"business_name":     profile.BusinessName,
			"google_review_url": profile.GoogleReviewURL,
			"terms_url":         profile.TermsURL,
			"privacy_url":       profile.PrivacyURL,
			"refund_url":        profile.RefundURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateSubscriptionStatus writes the billing state for a profile.
func (repo *profileRepository) UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("subscription_status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:                 profileM.ID,
		Email:              profileM.Email,
		PasswordHash:       profileM.PasswordHash,
		BusinessName:       profileM.BusinessName,
		GoogleReviewURL:    profileM.GoogleReviewURL,
		TermsURL:           profileM.TermsURL,
		PrivacyURL:         profileM.PrivacyURL,
		RefundURL:          profileM.RefundURL,
		SubscriptionStatus: entity.SubscriptionStatus(profileM.SubscriptionStatus),
		CreatedAt:          profileM.CreatedAt,
		UpdatedAt:          profileM.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:                 profile.ID,
		Email:              profile.Email,
		PasswordHash:       profile.PasswordHash,
		BusinessName:       profile.BusinessName,
		GoogleReviewURL:    profile.GoogleReviewURL,
		TermsURL:           profile.TermsURL,
		PrivacyURL:         profile.PrivacyURL,
		RefundURL:          profile.RefundURL,
		SubscriptionStatus: string(profile.SubscriptionStatus),
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}
