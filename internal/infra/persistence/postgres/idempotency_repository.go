package postgres

import (
	"context"

	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// idempotencyRepository implements the repository.IdempotencyRepository interface.
type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository is the constructor for idempotencyRepository.
func NewIdempotencyRepository(db *gorm.DB) repository.IdempotencyRepository {
	return &idempotencyRepository{
		db: db,
	}
}

// Claim inserts the (email, key) marker. A duplicate means a previous checkout committed with this key.
func (repo *idempotencyRepository) Claim(ctx context.Context, email, key string) error {
	marker := &model.CheckoutIdempotencyModel{
		Email: email,
		Key:   key,
	}

	// DO NOTHING keeps the surrounding transaction usable when the key is taken.
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "idempotency_key"}},
			DoNothing: true,
		}).
		Create(marker)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrIdempotencyKeyUsed
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record idempotency key")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIdempotencyKeyUsed
	}

	return nil
}
