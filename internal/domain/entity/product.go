package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog record. The catalog is managed elsewhere and read-only here.
type Product struct {
	ID       uuid.UUID
	Name     string
	Category string
	Cost     decimal.Decimal
	Rating   int
	Image    string
}

// ProductSnapshot is a value copy of a product taken when it is added to a cart.
// Later catalog changes never reach a snapshot.
type ProductSnapshot struct {
	ID       uuid.UUID       `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Rating   int             `json:"rating"`
	Image    string          `json:"image"`
}

// Snapshot copies the product's current state.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost,
		Rating:   p.Rating,
		Image:    p.Image,
	}
}
