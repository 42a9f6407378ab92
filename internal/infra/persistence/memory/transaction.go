package memory

import (
	"context"

	"vendofyx/internal/domain/repository"
)

// memoryTransactionManager implements repository.TransactionManager for the
// sandbox store. The store has no real transactions; the callback simply runs
// against repositories sharing the store, which is enough for sandbox use.
type memoryTransactionManager struct {
	store *Store
}

// memoryRepositoryFactory hands out repositories bound to the shared store.
type memoryRepositoryFactory struct {
	store *Store
}

func (f *memoryRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.store)
}

func (f *memoryRepositoryFactory) FeedbackRequestRepo() repository.FeedbackRequestRepository {
	return NewFeedbackRequestRepository(f.store)
}

// NewTransactionManager is the constructor for the sandbox transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&memoryRepositoryFactory{store: tm.store})
}
