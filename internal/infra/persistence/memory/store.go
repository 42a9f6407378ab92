// Package memory provides an in-process implementation of the persistence
// interfaces. It backs sandbox mode, where the service runs without a
// PostgreSQL connection and all state lives for the lifetime of the process.
package memory

import (
	"sync"
	"time"

	"vendofyx/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds all sandbox state behind a single mutex. The dataset is small
// by construction, so one lock is simpler and safe.
type Store struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*entity.Profile
	emails   map[string]uuid.UUID
	requests map[uuid.UUID]*entity.FeedbackRequest
}

// NewStore creates an empty sandbox store.
func NewStore() *Store {
	return &Store{
		profiles: make(map[uuid.UUID]*entity.Profile),
		emails:   make(map[string]uuid.UUID),
		requests: make(map[uuid.UUID]*entity.FeedbackRequest),
	}
}

// SeedDemoProfile inserts a ready-to-use demo account so the sandbox is
// explorable without registering. It is idempotent on the demo email.
func (s *Store) SeedDemoProfile(passwordHash string) *entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	const demoEmail = "demo@vendofyx.local"
	if id, ok := s.emails[demoEmail]; ok {
		return cloneProfile(s.profiles[id])
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:                 uuid.New(),
		Email:              demoEmail,
		PasswordHash:       passwordHash,
		BusinessName:       entity.DefaultBusinessName,
		GoogleReviewURL:    "https://search.google.com/local/writereview?placeid=demo",
		SubscriptionStatus: entity.SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.profiles[profile.ID] = profile
	s.emails[profile.Email] = profile.ID

	return cloneProfile(profile)
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	cp := *p

	return &cp
}

func cloneRequest(r *entity.FeedbackRequest) *entity.FeedbackRequest {
	cp := *r
	if r.Rating != nil {
		rating := *r.Rating
		cp.Rating = &rating
	}
	if r.FeedbackText != nil {
		text := *r.FeedbackText
		cp.FeedbackText = &text
	}

	return &cp
}
