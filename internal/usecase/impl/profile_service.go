package impl

import (
	"context"
	"strings"

	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
	}
}

// GetProfile returns the owner's business profile.
func (s *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update. Nil input fields keep their stored
// value; a present-but-empty business name is rejected so the rate page
// always has something to display.
func (s *profileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if input.BusinessName != nil {
		name := strings.TrimSpace(*input.BusinessName)
		if name == "" {
			return nil, domainerrors.ErrInvalidInput.WithDetails("business name cannot be empty")
		}
		profile.BusinessName = name
	}
	if input.GoogleReviewURL != nil {
		profile.GoogleReviewURL = strings.TrimSpace(*input.GoogleReviewURL)
	}
	if input.TermsURL != nil {
		profile.TermsURL = strings.TrimSpace(*input.TermsURL)
	}
	if input.PrivacyURL != nil {
		profile.PrivacyURL = strings.TrimSpace(*input.PrivacyURL)
	}
	if input.RefundURL != nil {
		profile.RefundURL = strings.TrimSpace(*input.RefundURL)
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}
