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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(bucket *blob.Bucket, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{
		bucket: bucket,
		logger: logger,
	}
}

// GetProduct loads a single product by ID.
func (repo *productRepository) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := readDocument(ctx, repo.bucket, productKey(id), &productM, domainerrors.ErrProductNotFound); err != nil {
		return nil, err
	}

	return toProductDomain(&productM), nil
}

// ListProducts loads every decodable product ordered by creation time.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)

	err := eachDocument(ctx, repo.bucket, repo.logger, productsPrefix, func(_ string, data []byte) error {
		var productM model.ProductModel
		if err := json.Unmarshal(data, &productM); err != nil {
			return err
		}
		products = append(products, toProductDomain(&productM))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID < products[j].ID
		}

		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})

	return products, nil
}

// PutProduct writes the product record, replacing any previous version.
func (repo *productRepository) PutProduct(ctx context.Context, product *entity.Product) error {
	if product == nil || strings.TrimSpace(product.ID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	return writeDocument(ctx, repo.bucket, productKey(product.ID), fromProductDomain(product))
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	price := productM.Price.Or(0)
	if price < 0 {
		price = 0
	}

	product := &entity.Product{
		ID:            productM.ID,
		ProductNumber: productM.ProductNumber,
		Name:          productM.Name,
		Owner:         productM.Owner,
		Price:         price,
		Category:      entity.Category(strings.TrimSpace(productM.Category)),
		Description:   productM.Description,
		ImageURL:      productM.ImageURL,
		Tags:          productM.Tags,
		Status:        entity.ProductStatus(productM.Status),
		CreatedAt:     model.ParseTimestamp(productM.CreatedAt),
	}
	if product.Category == "" {
		product.Category = entity.CategoryOther
	}
	if product.Status == "" {
		product.Status = entity.ProductStatusActive
	}

	return product
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            product.ID,
		ProductNumber: product.ProductNumber,
		Name:          product.Name,
		Owner:         product.Owner,
		Price:         model.Num(product.Price),
		Category:      product.Category.String(),
		Description:   product.Description,
		ImageURL:      product.ImageURL,
		Tags:          product.Tags,
		Status:        string(product.Status),
		CreatedAt:     model.FormatTimestamp(product.CreatedAt),
	}
}
