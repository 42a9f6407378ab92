package memory

import (
	"context"
	"time"

	"vendofyx/internal/domain/entity"
	"vendofyx/internal/domain/repository"

	"github.com/google/uuid"
)

// profileRepository implements repository.ProfileRepository on the sandbox store.
type profileRepository struct {
	store *Store
}

// NewProfileRepository is the constructor for the sandbox profile repository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	profile, ok := repo.store.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(profile), nil
}

func (repo *profileRepository) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.emails[email]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(repo.store.profiles[id]), nil
}

func (repo *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, taken := repo.store.emails[profile.Email]; taken {
		return repository.ErrDuplicateEmail
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	repo.store.profiles[profile.ID] = cloneProfile(profile)
	repo.store.emails[profile.Email] = profile.ID

	return nil
}

func (repo *profileRepository) Update(_ context.Context, profile *entity.Profile) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.profiles[profile.ID]
	if !ok {
		return repository.ErrProfileNotFound
	}

	stored.BusinessName = profile.BusinessName
	stored.GoogleReviewURL = profile.GoogleReviewURL
	stored.TermsURL = profile.TermsURL
	stored.PrivacyURL = profile.PrivacyURL
	stored.RefundURL = profile.RefundURL
	stored.UpdatedAt = time.Now()

	return nil
}

func (repo *profileRepository) UpdateSubscriptionStatus(_ context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}

	stored.SubscriptionStatus = status
	stored.UpdatedAt = time.Now()

	return nil
}
