package usecase

import (
	"context"

	"qkart/internal/domain/entity"
)

// CheckoutUsecase settles a cart against the shopper's wallet.
type CheckoutUsecase interface {
	// Checkout debits the cart total from the wallet and empties the cart in one transaction.
	// A non-empty idempotencyKey makes retries of a committed checkout succeed without a second debit.
	Checkout(ctx context.Context, email, idempotencyKey string) (*entity.CheckoutResult, error)
}
