package usecase

import (
	"context"

	"expo/internal/domain/entity"
	"expo/internal/domain/repository"
)

// CreateProductInput carries the fields a caller may set on a new product
type CreateProductInput struct {
	Name        string
	Owner       string
	Price       *float64
	Category    string
	Description string
	ImageURL    string
	Tags        []string
}

// SalesFilter narrows a sales listing. Empty fields match everything.
type SalesFilter struct {
	Status        string
	PaymentMethod string
	Limit         int
	Offset        int
}

// SalesSummary holds the counters computed over a filtered sales set
type SalesSummary struct {
	TotalSales        int     `json:"totalSales"`
	TotalRevenue      float64 `json:"totalRevenue"`
	BBPayTransactions int     `json:"bbpayTransactions"`
	UniqueProducts    int     `json:"uniqueProducts"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
}

// SalesListing is a filtered sales set, newest first, with its summary.
// The summary covers the whole filtered set; Limit and Offset only page Sales.
type SalesListing struct {
	SalesSummary
	Sales []*entity.Sale `json:"sales"`
}

// LedgerUsecase defines the product and sales ledger use cases
type LedgerUsecase interface {
	// ListProducts returns every product with live sales aggregates
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product with live sales aggregates
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct validates, persists and mirrors a new product
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// ListSales returns the filtered, repaired sales ledger
	ListSales(ctx context.Context, filter SalesFilter) (*SalesListing, error)

	// CreateSale records a single sale
	CreateSale(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)

	// RecordSales records a batch of sales and rebuilds the mirrors once
	RecordSales(ctx context.Context, sales []*entity.Sale) error

	// ExportCSV renders a whole collection as CSV
	ExportCSV(ctx context.Context, kind repository.MirrorKind) ([]byte, error)

	// ExportSalesCSV renders a filtered sales listing as CSV
	ExportSalesCSV(ctx context.Context, filter SalesFilter) ([]byte, error)

	// RebuildMirrors regenerates both CSV mirrors from the per-record files
	RebuildMirrors(ctx context.Context) error
}
