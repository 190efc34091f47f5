// Package pricing computes cart totals and promo discounts.
//
// Arithmetic is carried out in full decimal precision; callers round only
// for display with Round2.
package pricing

import (
	"sort"
	"strings"

	"expo/internal/errors"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PromoCode is a named percentage discount applied to a whole cart.
type PromoCode struct {
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// DefaultPromoCodes is the table used when configuration provides none.
func DefaultPromoCodes() map[string]float64 {
	return map[string]float64{
		"EXPO10":    10,
		"STUDENT15": 15,
		"STUDENT20": 20,
		"WELCOME20": 20,
		"BHARGAVA":  90,
	}
}

// PromoTable is an immutable, case-insensitive lookup of promo codes.
type PromoTable struct {
	codes map[string]float64
}

// NewPromoTable validates and normalizes a code table.
func NewPromoTable(codes map[string]float64) (*PromoTable, error) {
	normalized := make(map[string]float64, len(codes))
	for code, pct := range codes {
		key := strings.ToUpper(strings.TrimSpace(code))
		if key == "" {
			return nil, errors.New("promo code must not be empty")
		}
		if pct < 0 || pct > 100 {
			return nil, errors.Errorf("promo code %s: discount %v out of range 0-100", key, pct)
		}
		normalized[key] = pct
	}

	return &PromoTable{codes: normalized}, nil
}

// DefaultPromoTable returns the built-in promo table.
func DefaultPromoTable() *PromoTable {
	table, _ := NewPromoTable(DefaultPromoCodes())

	return table
}

// Lookup resolves a code regardless of case and surrounding whitespace.
func (t *PromoTable) Lookup(code string) (PromoCode, bool) {
	if t == nil {
		return PromoCode{}, false
	}

	key := strings.ToUpper(strings.TrimSpace(code))
	pct, ok := t.codes[key]
	if !ok {
		return PromoCode{}, false
	}

	return PromoCode{Code: key, DiscountPercentage: pct}, true
}

// Codes lists the known codes in lexical order.
func (t *PromoTable) Codes() []string {
	if t == nil {
		return nil
	}

	codes := make([]string, 0, len(t.codes))
	for code := range t.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// Line is the pricing view of one cart line.
type Line struct {
	Price    float64
	Quantity int
}

// Quote is the priced result of a cart.
type Quote struct {
	Subtotal       float64    `json:"subtotal"`
	DiscountAmount float64    `json:"discountAmount"`
	Total          float64    `json:"total"`
	PromoCode      *PromoCode `json:"promoCode,omitempty"`
}

// LineTotal returns price multiplied by quantity.
func LineTotal(price float64, quantity int) float64 {
	return lineTotal(price, quantity).InexactFloat64()
}

// Subtotal sums the line totals.
func Subtotal(lines []Line) float64 {
	return subtotal(lines).InexactFloat64()
}

// Total prices the lines with an optional promo. The total never goes below zero.
func Total(lines []Line, promo *PromoCode) Quote {
	sub := subtotal(lines)
	discount := decimal.Zero
	if promo != nil {
		discount = sub.Mul(decimal.NewFromFloat(promo.DiscountPercentage)).Div(hundred)
	}

	total := sub.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	quote := Quote{
		Subtotal:       sub.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		Total:          total.InexactFloat64(),
	}
	if promo != nil {
		p := *promo
		quote.PromoCode = &p
	}

	return quote
}

// LineDiscount is the share of a promo discount attributable to one line.
func LineDiscount(price float64, quantity int, promo *PromoCode) float64 {
	if promo == nil {
		return 0
	}

	return lineTotal(price, quantity).
		Mul(decimal.NewFromFloat(promo.DiscountPercentage)).
		Div(hundred).
		InexactFloat64()
}

// Round2 rounds half away from zero to two decimals for display.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

func subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(lineTotal(line.Price, line.Quantity))
	}

	return sum
}
