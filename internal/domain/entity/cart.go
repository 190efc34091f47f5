package entity

import (
	"expo/internal/domain/pricing"
)

// Variant distinguishes lines of the same product.
type Variant struct {
	Size  string `json:"selectedSize,omitempty"`
	Color string `json:"selectedColor,omitempty"`
}

// CartLineItem is one line of a cart. Lines merge on (ProductID, Variant).
type CartLineItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

// Variant returns the variant part of the line identity.
func (i CartLineItem) Variant() Variant {
	return Variant{Size: i.SelectedSize, Color: i.SelectedColor}
}

func (i CartLineItem) matches(productID string, v Variant) bool {
	return i.ProductID == productID && i.Variant() == v
}

// Cart holds line items and at most one applied promo code.
// No line ever has a quantity below one.
type Cart struct {
	Items []CartLineItem     `json:"items"`
	Promo *pricing.PromoCode `json:"promoCode,omitempty"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartLineItem{}}
}

// AddItem merges into an existing line with the same identity or appends a new one.
func (c *Cart) AddItem(item CartLineItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for idx := range c.Items {
		if c.Items[idx].matches(item.ProductID, item.Variant()) {
			c.Items[idx].Quantity += quantity

			return
		}
	}

	item.Quantity = quantity
	c.Items = append(c.Items, item)
}

// RemoveItem drops the matching line; absent lines are ignored.
func (c *Cart) RemoveItem(productID string, v Variant) {
	kept := c.Items[:0]
	for _, line := range c.Items {
		if !line.matches(productID, v) {
			kept = append(kept, line)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets the line quantity. Zero or below removes the line.
func (c *Cart) UpdateQuantity(productID string, v Variant, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, v)

		return
	}

	for idx := range c.Items {
		if c.Items[idx].matches(productID, v) {
			c.Items[idx].Quantity = quantity

			return
		}
	}
}

// Clear empties the cart and unsets the promo code.
func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
	c.Promo = nil
}

// ApplyPromoCode replaces the applied promo. An unknown code clears it.
func (c *Cart) ApplyPromoCode(table *pricing.PromoTable, code string) (pricing.PromoCode, bool) {
	promo, ok := table.Lookup(code)
	if !ok {
		c.Promo = nil

		return pricing.PromoCode{}, false
	}

	c.Promo = &promo

	return promo, true
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}

	return count
}

// Quote prices the cart with its applied promo.
func (c *Cart) Quote() pricing.Quote {
	return pricing.Total(c.lines(), c.Promo)
}

// Snapshot returns a deep copy of the cart.
func (c *Cart) Snapshot() *Cart {
	out := &Cart{Items: make([]CartLineItem, len(c.Items))}
	copy(out.Items, c.Items)
	if c.Promo != nil {
		promo := *c.Promo
		out.Promo = &promo
	}

	return out
}

func (c *Cart) lines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.Line{Price: item.Price, Quantity: item.Quantity})
	}

	return lines
}
