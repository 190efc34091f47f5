package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoTable_Lookup(t *testing.T) {
	table := DefaultPromoTable()

	tests := []struct {
		name    string
		code    string
		wantPct float64
		wantOK  bool
	}{
		{name: "upper case", code: "EXPO10", wantPct: 10, wantOK: true},
		{name: "lower case", code: "student20", wantPct: 20, wantOK: true},
		{name: "mixed case with spaces", code: "  Bhargava ", wantPct: 90, wantOK: true},
		{name: "unknown", code: "FREEBIE", wantOK: false},
		{name: "empty", code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo, ok := table.Lookup(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPct, promo.DiscountPercentage)
			}
		})
	}
}

func TestNewPromoTable_RejectsOutOfRange(t *testing.T) {
	_, err := NewPromoTable(map[string]float64{"BAD": 120})
	require.Error(t, err)

	_, err = NewPromoTable(map[string]float64{"NEG": -1})
	require.Error(t, err)

	_, err = NewPromoTable(map[string]float64{" ": 10})
	require.Error(t, err)
}

func TestPromoTable_Codes(t *testing.T) {
	table, err := NewPromoTable(map[string]float64{"b": 5, "a": 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, table.Codes())
}

func TestTotal_WithPromo(t *testing.T) {
	promo, ok := DefaultPromoTable().Lookup("STUDENT20")
	require.True(t, ok)

	quote := Total([]Line{{Price: 299, Quantity: 2}}, &promo)

	assert.Equal(t, 598.0, quote.Subtotal)
	assert.Equal(t, 119.6, quote.DiscountAmount)
	assert.Equal(t, 478.4, quote.Total)
	require.NotNil(t, quote.PromoCode)
	assert.Equal(t, "STUDENT20", quote.PromoCode.Code)
}

func TestTotal_WithoutPromo(t *testing.T) {
	quote := Total([]Line{{Price: 10.5, Quantity: 3}, {Price: 0.1, Quantity: 2}}, nil)

	assert.Equal(t, 31.7, quote.Subtotal)
	assert.Equal(t, 0.0, quote.DiscountAmount)
	assert.Equal(t, 31.7, quote.Total)
	assert.Nil(t, quote.PromoCode)
}

func TestTotal_FullDiscountNeverNegative(t *testing.T) {
	promo := PromoCode{Code: "ALL", DiscountPercentage: 100}

	quote := Total([]Line{{Price: 49.99, Quantity: 1}}, &promo)

	assert.Equal(t, 0.0, quote.Total)
	assert.Equal(t, 49.99, quote.DiscountAmount)
}

func TestTotal_EmptyCart(t *testing.T) {
	quote := Total(nil, nil)

	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Total)
}

func TestLineDiscount(t *testing.T) {
	promo := PromoCode{Code: "EXPO10", DiscountPercentage: 10}

	assert.Equal(t, 5.0, LineDiscount(25, 2, &promo))
	assert.Equal(t, 0.0, LineDiscount(25, 2, nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 478.4, Round2(478.4))
	assert.Equal(t, 0.33, Round2(1.0/3.0))
}
