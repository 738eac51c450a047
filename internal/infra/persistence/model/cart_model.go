package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CartModel mirrors the 'carts' table. Line items live in a JSONB column so the
// whole cart is read and written as one row.
type CartModel struct {
	ID            uuid.UUID                              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string                                 `gorm:"type:varchar(255);uniqueIndex:idx_carts_email;not null"`
	CartItems     datatypes.JSONType[[]CartItemDocument] `gorm:"type:jsonb;not null;default:'[]'"`
	PaymentOption string                                 `gorm:"type:varchar(64);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemDocument is the stored shape of one line item.
type CartItemDocument struct {
	Product  ProductDocument `json:"product"`
	Quantity int             `json:"quantity"`
}

// ProductDocument is the product snapshot embedded in a line item.
type ProductDocument struct {
	ID       uuid.UUID       `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Rating   int             `json:"rating"`
	Image    string          `json:"image"`
}
