package service

import (
	"context"
	"time"
)

// CheckoutEvent is emitted after a checkout commits
type CheckoutEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Email         string    `json:"email"`
	Total         string    `json:"total"` // Decimal string, never a float
	ItemCount     int       `json:"item_count"`
	PaymentOption string    `json:"payment_option"`
	CompletedAt   time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckoutEvent publishes a settled checkout for downstream consumers
	PublishCheckoutEvent(ctx context.Context, event *CheckoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
