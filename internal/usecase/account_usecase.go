package usecase

import (
	"context"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase exposes the parts of the user account the storefront reads and edits.
type AccountUsecase interface {
	// GetUser returns the account, which must belong to the requester.
	GetUser(ctx context.Context, requesterEmail string, userID uuid.UUID) (*entity.User, error)

	// SetAddress stores a shipping address on the requester's own account.
	SetAddress(ctx context.Context, requesterEmail string, userID uuid.UUID, address string) (entity.Address, error)
}
