package entity

import (
	"time"

	"expo/internal/util"

	"github.com/google/uuid"
)

// ProductStatus is the listing state of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// Product is an item offered by an owner at the expo.
type Product struct {
	ID            string        `json:"id"`
	ProductNumber string        `json:"productNumber"` // PROD followed by 8 uppercase alphanumerics.
	Name          string        `json:"name"`
	Owner         string        `json:"owner"`
	Price         float64       `json:"price"`
	Category      Category      `json:"category"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"imageUrl"`
	Tags          []string      `json:"tags,omitempty"`
	Status        ProductStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`

	// Derived from the sales ledger on read, never persisted.
	MoneyEarned float64 `json:"moneyEarned"`
	TotalSales  int     `json:"totalSales"`
}

// ProductAggregate holds the live totals for one product.
type ProductAggregate struct {
	MoneyEarned float64
	TotalSales  int
}

// NewProductID returns a fresh opaque product identifier.
func NewProductID() string {
	return "prod_" + uuid.NewString()
}

// NewProductNumber returns a display code in the PROD######## format.
func NewProductNumber() string {
	return "PROD" + util.MustRandomCode(8)
}

// ApplyDefaults fills the server-assigned fields that are still empty.
func (p *Product) ApplyDefaults(now time.Time) {
	if p.ID == "" {
		p.ID = NewProductID()
	}
	if p.ProductNumber == "" {
		p.ProductNumber = NewProductNumber()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now.UTC()
	}
	if p.Status == "" {
		p.Status = ProductStatusActive
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
}

// WithAggregate returns a copy of the product carrying the given totals.
func (p *Product) WithAggregate(agg ProductAggregate) *Product {
	out := *p
	out.MoneyEarned = agg.MoneyEarned
	out.TotalSales = agg.TotalSales

	return &out
}

// AggregateSales computes per-product totals over successful sales.
func AggregateSales(sales []*Sale) map[string]ProductAggregate {
	totals := make(map[string]ProductAggregate)
	for _, sale := range sales {
		if sale.PaymentStatus != PaymentStatusSuccess {
			continue
		}
		agg := totals[sale.ProductID]
		agg.MoneyEarned += sale.Total
		agg.TotalSales += sale.Quantity
		totals[sale.ProductID] = agg
	}

	return totals
}
