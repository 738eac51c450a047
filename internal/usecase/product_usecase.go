package usecase

import (
	"context"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase is the storefront's read-only view of the catalog.
// Reads may be served from a cache and can lag the catalog by the cache TTL.
type ProductUsecase interface {
	// GetProduct returns the product, failing with NotFound when it is not listed.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
}
