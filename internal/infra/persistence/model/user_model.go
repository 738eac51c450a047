package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LegacyAddressNotSet is the placeholder older account records store instead of NULL.
const LegacyAddressNotSet = "ADDRESS_NOT_SET"

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string          `gorm:"type:varchar(255);unique;not null"`
	Name        string          `gorm:"type:varchar(100)"`
	WalletMoney decimal.Decimal `gorm:"type:numeric(14,2);not null;default:500;check:wallet_money >= 0"`
	Address     *string         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
