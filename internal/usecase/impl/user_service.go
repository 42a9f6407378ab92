package impl

import (
	"context"
	"strings"

	"vendofyx/config"
	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/domain/service"
	"vendofyx/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	config         *config.Config
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		config:         params.Config,
	}
}

// Register creates a business account with placeholder defaults. The new
// profile starts unconfigured and unentitled; issuing links requires the
// owner to finish settings and subscribe first.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("email and password are required")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		businessName = entity.DefaultBusinessName
	}

	// Duplicate check and insert share a transaction; the unique constraint
	// on email backstops any race between two registrations.
	var profile *entity.Profile
	txErr := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if _, err := profileRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		profile = &entity.Profile{
			Email:              email,
			PasswordHash:       hash,
			BusinessName:       businessName,
			SubscriptionStatus: entity.SubscriptionInactive,
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.issueTokens(profile)
}

// Login authenticates an owner by email and password.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	profile, err := s.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Same answer for unknown email and wrong password.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	if !s.passwordHasher.Check(input.Password, profile.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(profile)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	token, err := s.tokenService.ValidateToken(refreshToken, s.config.SecretKey.Refresh)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	profileID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return s.issueTokens(profile)
}

func (s *userService) issueTokens(profile *entity.Profile) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(profile.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}
