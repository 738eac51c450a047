package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func snapshot(cost string) ProductSnapshot {
	return ProductSnapshot{ID: uuid.New(), Name: "item", Cost: decimal.RequireFromString(cost)}
}

func TestCart_Total(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  string
	}{
		{name: "empty cart", items: nil, want: "0"},
		{name: "single item", items: []CartItem{{Product: snapshot("200"), Quantity: 2}}, want: "400"},
		{
			name: "fractional costs do not drift",
			items: []CartItem{
				{Product: snapshot("0.1"), Quantity: 3},
				{Product: snapshot("0.2"), Quantity: 1},
			},
			want: "0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{Items: tt.items}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(cart.Total()), "got %s", cart.Total())
		})
	}
}

func TestCart_Mutations(t *testing.T) {
	a := snapshot("10")
	b := snapshot("20")
	cart := &Cart{}

	cart.Append(a, 1)
	cart.Append(b, 2)
	assert.Equal(t, 2, cart.ItemCount())
	assert.True(t, cart.HasProduct(a.ID))
	assert.Equal(t, 1, cart.IndexOf(b.ID))

	assert.True(t, cart.SetQuantity(a.ID, 5))
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.False(t, cart.SetQuantity(uuid.New(), 1))

	assert.True(t, cart.Remove(a.ID))
	assert.False(t, cart.Remove(a.ID))
	assert.Equal(t, []CartItem{{Product: b, Quantity: 2}}, cart.Items)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
}

func TestProduct_SnapshotIsValueCopy(t *testing.T) {
	product := &Product{ID: uuid.New(), Name: "Lamp", Cost: decimal.NewFromInt(200)}
	snap := product.Snapshot()

	product.Cost = decimal.NewFromInt(999)

	assert.True(t, decimal.NewFromInt(200).Equal(snap.Cost))
}

func TestUser_AddressAndWallet(t *testing.T) {
	user := &User{WalletMoney: decimal.NewFromInt(500)}
	assert.False(t, user.HasSetNonDefaultAddress())

	user.Address = NewAddress("   ")
	assert.False(t, user.HasSetNonDefaultAddress())

	user.Address = NewAddress("  221B Baker Street ")
	assert.True(t, user.HasSetNonDefaultAddress())
	assert.Equal(t, "221B Baker Street", user.Address.Line)

	assert.True(t, user.CanAfford(decimal.NewFromInt(500)))
	assert.False(t, user.CanAfford(decimal.NewFromInt(501)))

	user.Debit(decimal.NewFromInt(400))
	assert.True(t, decimal.NewFromInt(100).Equal(user.WalletMoney))
}
