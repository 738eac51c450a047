// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the shopper account the cart and checkout operate on.
// Registration and credentials are owned elsewhere; this side only reads and debits it.
type User struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Email       string          // The user's unique email, also the owner key of the cart.
	Name        string          // The user's display name.
	WalletMoney decimal.Decimal // Stored wallet balance, never negative, decremented only by checkout.
	Address     Address         // Shipping address and whether it has been configured.
	CreatedAt   time.Time       // Timestamp of when this user account was created.
	UpdatedAt   time.Time       // Timestamp of the last modification to this user's data.
}

// HasSetNonDefaultAddress reports whether the user configured a shipping address.
func (u *User) HasSetNonDefaultAddress() bool {
	return u.Address.IsSet()
}

// CanAfford reports whether the wallet covers the given amount.
func (u *User) CanAfford(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(u.WalletMoney)
}

// Debit subtracts amount from the wallet. Callers check CanAfford first.
func (u *User) Debit(amount decimal.Decimal) {
	u.WalletMoney = u.WalletMoney.Sub(amount)
}
