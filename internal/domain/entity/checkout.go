package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutResult describes a settled checkout. It is not persisted.
type CheckoutResult struct {
	Email         string
	Total         decimal.Decimal
	ItemCount     int
	PaymentOption string
	Replayed      bool // True when an already committed idempotency key was reused.
	CompletedAt   time.Time
}
