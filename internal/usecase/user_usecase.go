// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vendofyx/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new business account.
type RegisterInput struct {
	Email        string
	Password     string
	BusinessName string
}

// LoginInput defines the data required for an owner to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful register,
// login, or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
}
