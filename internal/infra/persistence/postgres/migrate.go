package postgres

import (
	"context"

	"qkart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists the persistence models owned by this service.
func Models() []any {
	return []any{
		model.UserModel{},
		model.ProductModel{},
		model.CartModel{},
		model.CheckoutIdempotencyModel{},
	}
}

// AutoMigrate creates or alters the tables behind Models.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "pg_uuidv7"`).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuid v7 extension")
	}

	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
