package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-user collection of line items pending purchase.
// There is at most one cart per email; it is emptied, never deleted, by checkout.
type Cart struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the cart.
	Email         string     // The owner's email, unique across carts.
	Items         []CartItem // Line items in insertion order.
	PaymentOption string     // Payment option fixed at creation.
	CreatedAt     time.Time  // Timestamp of when the cart was created.
	UpdatedAt     time.Time  // Timestamp of the last mutation.
}

// CartItem is a (product snapshot, quantity) pair. Quantity is always positive.
type CartItem struct {
	Product  ProductSnapshot
	Quantity int
}

// IndexOf returns the position of the line item for productID, or -1.
func (c *Cart) IndexOf(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

// HasProduct reports whether productID is already a line item.
func (c *Cart) HasProduct(productID uuid.UUID) bool {
	return c.IndexOf(productID) >= 0
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the number of line items.
func (c *Cart) ItemCount() int {
	return len(c.Items)
}

// Total sums snapshot cost times quantity over all line items.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// Subtotal returns cost times quantity for a single line item.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Cost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Append adds a new line item. Callers reject duplicates first.
func (c *Cart) Append(product ProductSnapshot, quantity int) {
	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
}

// SetQuantity overwrites the quantity of the line item for productID.
// It returns false when the product is not in the cart.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) bool {
	idx := c.IndexOf(productID)
	if idx < 0 {
		return false
	}
	c.Items[idx].Quantity = quantity

	return true
}

// Remove deletes the line item for productID, keeping the order of the rest.
// It returns false when the product is not in the cart.
func (c *Cart) Remove(productID uuid.UUID) bool {
	idx := c.IndexOf(productID)
	if idx < 0 {
		return false
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)

	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}
