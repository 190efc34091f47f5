package entity

import (
	"testing"

	"expo/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tshirt(size string) CartLineItem {
	return CartLineItem{ProductID: "prod_1", Name: "Expo Tee", Price: 299, SelectedSize: size}
}

func TestCart_AddItemMergesSameIdentity(t *testing.T) {
	cart := NewCart()

	cart.AddItem(tshirt("M"), 1)
	cart.AddItem(tshirt("M"), 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_AddItemKeepsVariantsApart(t *testing.T) {
	cart := NewCart()

	cart.AddItem(tshirt("M"), 1)
	cart.AddItem(tshirt("L"), 1)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_AddItemClampsQuantity(t *testing.T) {
	cart := NewCart()

	cart.AddItem(tshirt(""), 0)
	cart.AddItem(CartLineItem{ProductID: "prod_2", Price: 10}, -4)

	require.Len(t, cart.Items, 2)
	for _, line := range cart.Items {
		assert.Equal(t, 1, line.Quantity)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tshirt("M"), 1)
	cart.AddItem(tshirt("L"), 1)

	cart.RemoveItem("prod_1", Variant{Size: "M"})
	cart.RemoveItem("prod_missing", Variant{})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "L", cart.Items[0].SelectedSize)
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "set quantity", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "zero removes", quantity: 0, wantLines: 0},
		{name: "negative removes", quantity: -2, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			cart.AddItem(tshirt("M"), 2)

			cart.UpdateQuantity("prod_1", Variant{Size: "M"}, tt.quantity)

			require.Len(t, cart.Items, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, cart.Items[0].Quantity)
			}
			for _, line := range cart.Items {
				assert.Greater(t, line.Quantity, 0)
			}
		})
	}
}

func TestCart_ApplyPromoCode(t *testing.T) {
	table := pricing.DefaultPromoTable()
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "prod_1", Price: 299}, 2)

	promo, ok := cart.ApplyPromoCode(table, "student20")
	require.True(t, ok)
	assert.Equal(t, "STUDENT20", promo.Code)

	canonical := NewCart()
	canonical.AddItem(CartLineItem{ProductID: "prod_1", Price: 299}, 2)
	_, ok = canonical.ApplyPromoCode(table, "STUDENT20")
	require.True(t, ok)
	assert.Equal(t, canonical.Quote(), cart.Quote())

	quote := cart.Quote()
	assert.Equal(t, 598.0, quote.Subtotal)
	assert.Equal(t, 119.6, quote.DiscountAmount)
	assert.Equal(t, 478.4, quote.Total)

	_, ok = cart.ApplyPromoCode(table, "NOPE")
	assert.False(t, ok)
	assert.Nil(t, cart.Promo)
	assert.Equal(t, 0.0, cart.Quote().DiscountAmount)
	assert.Equal(t, 598.0, cart.Quote().Total)
}

func TestCart_ApplyPromoCodeReplaces(t *testing.T) {
	table := pricing.DefaultPromoTable()
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "prod_1", Price: 100}, 1)

	_, _ = cart.ApplyPromoCode(table, "EXPO10")
	_, _ = cart.ApplyPromoCode(table, "STUDENT15")

	assert.Equal(t, 15.0, cart.Quote().DiscountAmount)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tshirt("M"), 1)
	_, _ = cart.ApplyPromoCode(pricing.DefaultPromoTable(), "EXPO10")

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Promo)
}

func TestCart_SnapshotIsIndependent(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tshirt("M"), 1)
	_, _ = cart.ApplyPromoCode(pricing.DefaultPromoTable(), "EXPO10")

	snap := cart.Snapshot()
	cart.UpdateQuantity("prod_1", Variant{Size: "M"}, 9)
	cart.Promo.DiscountPercentage = 50

	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 10.0, snap.Promo.DiscountPercentage)
}
