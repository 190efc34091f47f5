package repository

import (
	"context"

	"expo/internal/domain/entity"
)

// SaleRepository stores the append-only sales ledger.
type SaleRepository interface {
	// GetSale loads a single sale with legacy fields repaired.
	GetSale(ctx context.Context, id string) (*entity.Sale, error)

	// ListSales loads every decodable sale with legacy fields repaired in memory.
	// Stored files are never rewritten on read.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// PutSale writes one sale record.
	PutSale(ctx context.Context, sale *entity.Sale) error
}
