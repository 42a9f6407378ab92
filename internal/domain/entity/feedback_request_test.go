package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_ThresholdExhaustive(t *testing.T) {
	for _, rating := range []int{1, 2, 3} {
		dest, ok := Route(rating)
		require.True(t, ok, "rating %d", rating)
		assert.Equal(t, RoutePrivateCapture, dest, "rating %d", rating)
	}

	for _, rating := range []int{4, 5} {
		dest, ok := Route(rating)
		require.True(t, ok, "rating %d", rating)
		assert.Equal(t, RoutePublicRedirect, dest, "rating %d", rating)
	}
}

func TestRoute_RejectsOutOfRange(t *testing.T) {
	for _, rating := range []int{-1, 0, 6, 100} {
		_, ok := Route(rating)
		assert.False(t, ok, "rating %d", rating)
	}
}

func TestIsExpired_Boundary(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	request := &FeedbackRequest{
		Status:    StatusPending,
		CreatedAt: created,
	}

	assert.False(t, request.IsExpired(created.Add(DefaultLinkTTL-time.Second), DefaultLinkTTL))
	assert.False(t, request.IsExpired(created.Add(DefaultLinkTTL), DefaultLinkTTL))
	assert.True(t, request.IsExpired(created.Add(DefaultLinkTTL+time.Second), DefaultLinkTTL))
}

func TestIsExpired_RatedNeverExpires(t *testing.T) {
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rating := 5
	request := &FeedbackRequest{
		Status:    StatusRated,
		Rating:    &rating,
		CreatedAt: created,
	}

	assert.False(t, request.IsExpired(created, DefaultLinkTTL))
	assert.False(t, request.IsExpired(created.Add(10*365*24*time.Hour), DefaultLinkTTL))
}

func TestIsExpired_ClickedFollowsTTL(t *testing.T) {
	created := time.Now().Add(-8 * 24 * time.Hour)
	request := &FeedbackRequest{
		Status:    StatusClicked,
		CreatedAt: created,
	}

	assert.True(t, request.IsExpired(time.Now(), DefaultLinkTTL))
}

func TestSubscriptionStatus_Entitled(t *testing.T) {
	assert.True(t, SubscriptionActive.Entitled())
	assert.True(t, SubscriptionActiveAnnual.Entitled())
	assert.False(t, SubscriptionInactive.Entitled())
	assert.False(t, SubscriptionStatus("cancelled").Entitled())
}

func TestSubscriptionStatus_Valid(t *testing.T) {
	assert.True(t, SubscriptionInactive.Valid())
	assert.True(t, SubscriptionActive.Valid())
	assert.True(t, SubscriptionActiveAnnual.Valid())
	assert.False(t, SubscriptionStatus("").Valid())
	assert.False(t, SubscriptionStatus("trialing").Valid())
}
