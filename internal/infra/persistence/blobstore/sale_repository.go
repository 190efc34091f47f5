package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"
	"expo/internal/infra/persistence/model"

	"gocloud.dev/blob"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(bucket *blob.Bucket, logger *slog.Logger) repository.SaleRepository {
	return &saleRepository{
		bucket: bucket,
		logger: logger,
	}
}

// GetSale loads a single sale with legacy fields repaired.
func (repo *saleRepository) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	var saleM model.SaleModel
	if err := readDocument(ctx, repo.bucket, saleKey(id), &saleM, domainerrors.ErrNotFound.WithDetails("sale "+id)); err != nil {
		return nil, err
	}

	return model.RepairLegacySale(&saleM), nil
}

// ListSales loads every decodable sale ordered by purchase date.
func (repo *saleRepository) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	sales := make([]*entity.Sale, 0)

	err := eachDocument(ctx, repo.bucket, repo.logger, salesPrefix, func(_ string, data []byte) error {
		var saleM model.SaleModel
		if err := json.Unmarshal(data, &saleM); err != nil {
			return err
		}
		sales = append(sales, model.RepairLegacySale(&saleM))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sales, func(i, j int) bool {
		if sales[i].PurchaseDate.Equal(sales[j].PurchaseDate) {
			return sales[i].ID < sales[j].ID
		}

		return sales[i].PurchaseDate.Before(sales[j].PurchaseDate)
	})

	return sales, nil
}

// PutSale writes one sale record.
func (repo *saleRepository) PutSale(ctx context.Context, sale *entity.Sale) error {
	if sale == nil || strings.TrimSpace(sale.ID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("sale id is required")
	}

	return writeDocument(ctx, repo.bucket, saleKey(sale.ID), fromSaleDomain(sale))
}

func fromSaleDomain(sale *entity.Sale) *model.SaleModel {
	return &model.SaleModel{
		ID:              sale.ID,
		ProductID:       sale.ProductID,
		ProductNumber:   sale.ProductNumber,
		ProductName:     sale.ProductName,
		ProductOwner:    sale.ProductOwner,
		ProductCategory: sale.ProductCategory,
		Quantity:        model.Num(float64(sale.Quantity)),
		Price:           model.Num(sale.Price),
		Total:           model.Num(sale.Total),
		Currency:        sale.Currency,
		PaymentMethod:   string(sale.PaymentMethod),
		BBPayID:         sale.PaymentIdentifier,
		TransactionID:   sale.TransactionID,
		BuyerName:       sale.BuyerName,
		BuyerEmail:      sale.BuyerEmail,
		BuyerPhone:      sale.BuyerPhone,
		PurchaseDate:    model.FormatTimestamp(sale.PurchaseDate),
		PaymentStatus:   string(sale.PaymentStatus),
		Status:          string(sale.Status),
		PromoCode:       sale.PromoCode,
		DiscountAmount:  sale.DiscountAmount,
	}
}
