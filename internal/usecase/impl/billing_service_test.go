package impl

import (
	"context"
	"testing"

	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	mockRepo "vendofyx/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingService_ApplySubscriptionChange(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewBillingService(BillingServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	ownerID := uuid.New()

	profileRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, ownerID, entity.SubscriptionActiveAnnual).
		Return(nil)

	err := service.ApplySubscriptionChange(ctx, ownerID, entity.SubscriptionActiveAnnual)
	require.NoError(t, err)
}

func TestBillingService_ApplySubscriptionChange_UnknownStatus(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewBillingService(BillingServiceParams{ProfileRepo: profileRepo})

	err := service.ApplySubscriptionChange(context.Background(), uuid.New(), entity.SubscriptionStatus("lifetime"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestBillingService_ApplySubscriptionChange_UnknownProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewBillingService(BillingServiceParams{ProfileRepo: profileRepo})

	ctx := context.Background()
	ownerID := uuid.New()

	profileRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, ownerID, entity.SubscriptionInactive).
		Return(repository.ErrProfileNotFound)

	err := service.ApplySubscriptionChange(ctx, ownerID, entity.SubscriptionInactive)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
