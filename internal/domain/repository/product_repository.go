package repository

import (
	"context"
	"errors"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when the catalog has no product with the given id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only product lookup the cart needs.
type ProductRepository interface {
	// FindByID retrieves a product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
