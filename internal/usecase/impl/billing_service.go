package impl

import (
	"context"

	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type billingService struct {
	profileRepo repository.ProfileRepository
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
}

// NewBillingService creates a new billing service instance
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		profileRepo: params.ProfileRepo,
	}
}

// ApplySubscriptionChange writes the billing state reported by the payment
// provider. This is the only write path for subscription status.
func (s *billingService) ApplySubscriptionChange(ctx context.Context, ownerID uuid.UUID, status entity.SubscriptionStatus) error {
	if !status.Valid() {
		return domainerrors.ErrInvalidInput.WithDetails("unknown subscription status")
	}

	if err := s.profileRepo.UpdateSubscriptionStatus(ctx, ownerID, status); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update subscription status")
	}

	return nil
}
