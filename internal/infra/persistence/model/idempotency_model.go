package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutIdempotencyModel mirrors the 'checkout_idempotency_keys' table.
// A row only marks that a checkout with this key committed; it carries no order data.
type CheckoutIdempotencyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_checkout_idempotency_email_key"`
	Key       string    `gorm:"column:idempotency_key;type:varchar(128);not null;uniqueIndex:idx_checkout_idempotency_email_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutIdempotencyModel) TableName() string {
	return "checkout_idempotency_keys"
}
