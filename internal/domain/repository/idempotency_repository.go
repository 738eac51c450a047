package repository

import (
	"context"
	"errors"
)

// ErrIdempotencyKeyUsed is returned when the key was already claimed by a committed request.
var ErrIdempotencyKeyUsed = errors.New("idempotency key already used")

// IdempotencyRepository records the keys of settled checkouts.
type IdempotencyRepository interface {
	// Claim records (email, key). It must run inside the transaction whose outcome it marks,
	// so a rolled back attempt releases the key.
	Claim(ctx context.Context, email, key string) error
}
