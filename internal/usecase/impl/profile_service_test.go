package impl

import (
	"context"
	"testing"

	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	mockRepo "vendofyx/internal/mocks/repository"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	profileID := uuid.New()

	profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, BusinessName: "Corner Cafe"}, nil)

	profile, err := service.GetProfile(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", profile.BusinessName)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	profileID := uuid.New()

	profileRepo.EXPECT().FindByID(ctx, profileID).Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetProfile(ctx, profileID)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	profileID := uuid.New()

	stored := &entity.Profile{
		ID:              profileID,
		BusinessName:    "Corner Cafe",
		GoogleReviewURL: "https://old.example.com",
		TermsURL:        "https://cafe.example.com/terms",
	}

	profileRepo.EXPECT().FindByID(ctx, profileID).Return(stored, nil)
	profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	// Only the review URL changes; untouched fields keep their values.
	updated, err := service.UpdateProfile(ctx, profileID, &usecase.UpdateProfileInput{
		GoogleReviewURL: strPtr("https://search.google.com/local/writereview?placeid=new"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", updated.BusinessName)
	assert.Equal(t, "https://search.google.com/local/writereview?placeid=new", updated.GoogleReviewURL)
	assert.Equal(t, "https://cafe.example.com/terms", updated.TermsURL)
}

func TestProfileService_UpdateProfile_EmptyBusinessName(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	profileID := uuid.New()

	profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, BusinessName: "Corner Cafe"}, nil)

	updated, err := service.UpdateProfile(ctx, profileID, &usecase.UpdateProfileInput{
		BusinessName: strPtr("   "),
	})
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestProfileService_UpdateProfile_LegalLinks(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	profileID := uuid.New()

	profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, BusinessName: "Corner Cafe"}, nil)
	profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	updated, err := service.UpdateProfile(ctx, profileID, &usecase.UpdateProfileInput{
		TermsURL:   strPtr("https://cafe.example.com/terms"),
		PrivacyURL: strPtr("https://cafe.example.com/privacy"),
		RefundURL:  strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cafe.example.com/terms", updated.TermsURL)
	assert.Equal(t, "https://cafe.example.com/privacy", updated.PrivacyURL)
	assert.Empty(t, updated.RefundURL)
}
