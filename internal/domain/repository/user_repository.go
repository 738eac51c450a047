// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on user accounts this service needs.
// Accounts are created elsewhere; this side reads them, sets the address and debits the wallet.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailForUpdate retrieves a user and locks the row until the surrounding transaction ends.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error)

	// Update persists the wallet balance and address of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
