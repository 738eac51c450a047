package repository

import (
	"context"
	"errors"

	"qkart/internal/domain/entity"
)

// ErrCartNotFound is returned when the user has no cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the persistence operations for carts.
type CartRepository interface {
	// FindByEmail retrieves the cart owned by email.
	FindByEmail(ctx context.Context, email string) (*entity.Cart, error)

	// FindByEmailForUpdate retrieves the cart and locks its row until the surrounding transaction ends.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.Cart, error)

	// FindOrCreate returns the cart owned by email, atomically creating an empty one
	// with the given payment option when none exists. Concurrent callers observe the same cart.
	FindOrCreate(ctx context.Context, email, paymentOption string) (*entity.Cart, error)

	// Save persists the cart's line items.
	Save(ctx context.Context, cart *entity.Cart) error
}
