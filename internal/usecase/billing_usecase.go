// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vendofyx/internal/domain/entity"

	"github.com/google/uuid"
)

// BillingUsecase applies subscription changes reported by the billing
// provider. Nothing else in the system writes subscription status.
type BillingUsecase interface {
	ApplySubscriptionChange(ctx context.Context, ownerID uuid.UUID, status entity.SubscriptionStatus) error
}
