// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"expo/internal/domain/entity"
)

// ProductRepository stores one record per product.
type ProductRepository interface {
	// GetProduct loads a single product by ID.
	// Returns domainerrors.ErrProductNotFound when absent and ErrCorruptRecord when undecodable.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts loads every decodable product. Corrupt records are skipped and logged.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// PutProduct writes the product record, replacing any previous version.
	PutProduct(ctx context.Context, product *entity.Product) error
}
