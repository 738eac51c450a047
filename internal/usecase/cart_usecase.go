// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the cart mutations available to an authenticated shopper.
// The shopper is identified by email.
type CartUsecase interface {
	// GetCart returns the shopper's cart, failing with NotFound when none exists.
	GetCart(ctx context.Context, email string) (*entity.Cart, error)

	// AddToCart creates the cart on first use and appends a new line item.
	AddToCart(ctx context.Context, email string, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateQuantity overwrites the quantity of an existing line item.
	UpdateQuantity(ctx context.Context, email string, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveFromCart deletes a line item.
	RemoveFromCart(ctx context.Context, email string, productID uuid.UUID) error
}
