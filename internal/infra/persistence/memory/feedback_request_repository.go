package memory

import (
	"context"
	"sort"
	"time"

	"vendofyx/internal/domain/entity"
	"vendofyx/internal/domain/repository"

	"github.com/google/uuid"
)

// feedbackRequestRepository implements repository.FeedbackRequestRepository on
// the sandbox store. The state transitions carry the same guards as the
// PostgreSQL implementation, just enforced under the store lock.
type feedbackRequestRepository struct {
	store *Store
}

// NewFeedbackRequestRepository is the constructor for the sandbox feedback request repository.
func NewFeedbackRequestRepository(store *Store) repository.FeedbackRequestRepository {
	return &feedbackRequestRepository{store: store}
}

func (repo *feedbackRequestRepository) Create(_ context.Context, request *entity.FeedbackRequest) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.profiles[request.OwnerID]; !ok {
		return repository.ErrProfileNotFound
	}

	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	repo.store.requests[request.ID] = cloneRequest(request)

	return nil
}

func (repo *feedbackRequestRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FeedbackRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	request, ok := repo.store.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}

	return cloneRequest(request), nil
}

func (repo *feedbackRequestRepository) FindByOwner(_ context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedbackRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	requests := make([]*entity.FeedbackRequest, 0)
	for _, request := range repo.store.requests {
		if request.OwnerID == ownerID {
			requests = append(requests, cloneRequest(request))
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	if limit > 0 && len(requests) > limit {
		requests = requests[:limit]
	}

	return requests, nil
}

func (repo *feedbackRequestRepository) MarkClicked(_ context.Context, id uuid.UUID) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	request, ok := repo.store.requests[id]
	if !ok || request.Status != entity.StatusPending {
		return false, nil
	}

	request.Status = entity.StatusClicked
	request.UpdatedAt = time.Now()

	return true, nil
}

func (repo *feedbackRequestRepository) MarkRated(_ context.Context, id uuid.UUID, rating int, feedbackText *string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	request, ok := repo.store.requests[id]
	if !ok {
		return repository.ErrRequestNotFound
	}
	if request.Status == entity.StatusRated {
		return repository.ErrAlreadyRated
	}

	request.Status = entity.StatusRated
	request.Rating = &rating
	request.FeedbackText = feedbackText
	request.UpdatedAt = time.Now()

	return nil
}
