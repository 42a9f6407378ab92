package service

import (
	"context"
)

// FeedbackCapturedEvent is published when a rating is captured privately,
// so external alerting can notify the business of new negative feedback.
type FeedbackCapturedEvent struct {
	RequestID    string `json:"request_id"`
	OwnerID      string `json:"owner_id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	FeedbackText string `json:"feedback_text,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFeedbackCaptured publishes a private-capture event for async processing
	PublishFeedbackCaptured(ctx context.Context, event *FeedbackCapturedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
