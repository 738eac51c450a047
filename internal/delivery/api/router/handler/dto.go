package handler

import (
	"time"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddToCartRequest represents the request body for adding a product to the cart
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required,uuid_nonzero"`
	Quantity  *int   `json:"quantity" validate:"required,min=1"`
}

// UpdateCartRequest represents the request body for changing a line item; a zero quantity removes it
type UpdateCartRequest struct {
	ProductID string `json:"productId" validate:"required,uuid_nonzero"`
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
}

// UpdateAddressRequest represents the request body for setting the shipping address
type UpdateAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// CartItemResponse is a single line item of CartResponse
type CartItemResponse struct {
	Product  entity.ProductSnapshot `json:"product"`
	Quantity int                    `json:"quantity"`
}

// CartResponse is the wire representation of a cart
type CartResponse struct {
	ID            uuid.UUID          `json:"_id"`
	Email         string             `json:"email"`
	CartItems     []CartItemResponse `json:"cartItems"`
	PaymentOption string             `json:"paymentOption"`
	Total         decimal.Decimal    `json:"total"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// UserResponse is the wire representation of an account
type UserResponse struct {
	ID            uuid.UUID       `json:"_id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	WalletMoney   decimal.Decimal `json:"walletMoney"`
	Address       string          `json:"address"`
	AddressStatus string          `json:"addressStatus"`
}

// AddressResponse is returned by the address query and update endpoints
type AddressResponse struct {
	Address string `json:"address"`
}

// legacyUnsetAddress keeps older storefront clients working, they compare against this literal
const legacyUnsetAddress = "ADDRESS_NOT_SET"

func toCartResponse(cart *entity.Cart) *CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{Product: item.Product, Quantity: item.Quantity})
	}

	return &CartResponse{
		ID:            cart.ID,
		Email:         cart.Email,
		CartItems:     items,
		PaymentOption: cart.PaymentOption,
		Total:         cart.Total(),
		UpdatedAt:     cart.UpdatedAt,
	}
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		WalletMoney:   user.WalletMoney,
		Address:       addressLine(user.Address),
		AddressStatus: user.Address.Status.String(),
	}
}

func addressLine(address entity.Address) string {
	if !address.IsSet() {
		return legacyUnsetAddress
	}

	return address.Line
}
