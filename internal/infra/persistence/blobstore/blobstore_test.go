package blobstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"expo/config"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"
	"expo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return bucket
}

func TestProductRepository_PutAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newMemBucket(t), newDiscardLogger())

	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	product := &entity.Product{
		ID:            "prod_1",
		ProductNumber: "PRODABCD1234",
		Name:          "Solar Lamp",
		Owner:         "Meera",
		Price:         299,
		Category:      entity.CategoryHomeGarden,
		Status:        entity.ProductStatusActive,
		Tags:          []string{"eco"},
		CreatedAt:     created,
		MoneyEarned:   1000,
		TotalSales:    4,
	}

	require.NoError(t, repo.PutProduct(ctx, product))

	got, err := repo.GetProduct(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "Solar Lamp", got.Name)
	assert.Equal(t, 299.0, got.Price)
	assert.Equal(t, entity.CategoryHomeGarden, got.Category)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Zero(t, got.MoneyEarned)
	assert.Zero(t, got.TotalSales)
}

func TestProductRepository_GetMissing(t *testing.T) {
	repo := NewProductRepository(newMemBucket(t), newDiscardLogger())

	_, err := repo.GetProduct(context.Background(), "nope")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductRepository_ListSkipsCorruptRecords(t *testing.T) {
	ctx := context.Background()
	bucket := newMemBucket(t)
	repo := NewProductRepository(bucket, newDiscardLogger())

	require.NoError(t, repo.PutProduct(ctx, &entity.Product{ID: "b", Name: "B", CreatedAt: time.Unix(200, 0)}))
	require.NoError(t, repo.PutProduct(ctx, &entity.Product{ID: "a", Name: "A", CreatedAt: time.Unix(100, 0)}))
	require.NoError(t, bucket.WriteAll(ctx, "products/product-broken.json", []byte("{not json"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "products/readme.txt", []byte("ignored"), nil))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)

	_, err = repo.GetProduct(ctx, "broken")
	assert.True(t, errors.Is(err, domainerrors.ErrCorruptRecord))
}

func TestProductRepository_LegacyStringPrice(t *testing.T) {
	ctx := context.Background()
	bucket := newMemBucket(t)
	repo := NewProductRepository(bucket, newDiscardLogger())

	legacy := `{"id":"p1","name":"Mug","owner":"Ravi","price":"150","category":"","createdAt":"2024-12-01T10:00:00.000Z","moneyEarned":999,"totalSales":9}`
	require.NoError(t, bucket.WriteAll(ctx, "products/product-p1.json", []byte(legacy), nil))

	got, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Price)
	assert.Equal(t, entity.CategoryOther, got.Category)
	assert.Equal(t, entity.ProductStatusActive, got.Status)
	assert.Equal(t, 2024, got.CreatedAt.Year())
	assert.Zero(t, got.TotalSales)
}

func TestSaleRepository_RepairsLegacyRecordsOnRead(t *testing.T) {
	ctx := context.Background()
	bucket := newMemBucket(t)
	repo := NewSaleRepository(bucket, newDiscardLogger())

	legacy := `{
		"id": "s1",
		"productId": "p1",
		"productOwner": "Meera",
		"quantity": "2",
		"price": "150",
		"total": null,
		"paymentMethod": "UPI-GPay",
		"upiId": "meera@okaxis",
		"customerName": "Ravi",
		"date": "2024-11-05T12:00:00.000Z"
	}`
	require.NoError(t, bucket.WriteAll(ctx, "sales/sale-s1.json", []byte(legacy), nil))

	sales, err := repo.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)

	sale := sales[0]
	assert.Equal(t, entity.PaymentMethodBBPay, sale.PaymentMethod)
	assert.Equal(t, 2, sale.Quantity)
	assert.Equal(t, 150.0, sale.Price)
	assert.Equal(t, 300.0, sale.Total)
	assert.Equal(t, "meera@okaxis", sale.PaymentIdentifier)
	assert.Equal(t, "Ravi", sale.BuyerName)
	assert.Equal(t, entity.DefaultCurrency, sale.Currency)
	assert.Equal(t, entity.PaymentStatusSuccess, sale.PaymentStatus)
	assert.Equal(t, time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC), sale.PurchaseDate)

	stored, err := bucket.ReadAll(ctx, "sales/sale-s1.json")
	require.NoError(t, err)
	assert.Equal(t, legacy, string(stored))
}

func TestSaleRepository_CustomerObject(t *testing.T) {
	ctx := context.Background()
	bucket := newMemBucket(t)
	repo := NewSaleRepository(bucket, newDiscardLogger())

	legacy := `{"id":"s2","productId":"p1","price":10,"quantity":1,"customer":{"name":"Asha","email":"asha@example.com"}}`
	require.NoError(t, bucket.WriteAll(ctx, "sales/sale-s2.json", []byte(legacy), nil))

	sale, err := repo.GetSale(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", sale.BuyerName)
	assert.Equal(t, "asha@example.com", sale.BuyerEmail)
	assert.Equal(t, 10.0, sale.Total)
}

func TestSaleRepository_WritesBBPayIDKey(t *testing.T) {
	ctx := context.Background()
	bucket := newMemBucket(t)
	repo := NewSaleRepository(bucket, newDiscardLogger())

	sale := &entity.Sale{
		ID:                "s3",
		ProductID:         "p1",
		Quantity:          1,
		Price:             20,
		Total:             20,
		PaymentMethod:     entity.PaymentMethodBBPay,
		PaymentIdentifier: "BBPAY123456789",
		PurchaseDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.PutSale(ctx, sale))

	stored, err := bucket.ReadAll(ctx, "sales/sale-s3.json")
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"bbpayId": "BBPAY123456789"`)
	assert.NotContains(t, string(stored), "upiId")

	got, err := repo.GetSale(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, "BBPAY123456789", got.PaymentIdentifier)
}

func TestSaleRepository_ListOrdersByPurchaseDateAndSkipsCorrupt(t *testing.T) {
	ctx := context.Background()
	bucket := newMemBucket(t)
	repo := NewSaleRepository(bucket, newDiscardLogger())

	require.NoError(t, repo.PutSale(ctx, &entity.Sale{ID: "late", Price: 1, Quantity: 1, PurchaseDate: time.Unix(2000, 0)}))
	require.NoError(t, repo.PutSale(ctx, &entity.Sale{ID: "early", Price: 1, Quantity: 1, PurchaseDate: time.Unix(1000, 0)}))
	require.NoError(t, bucket.WriteAll(ctx, "sales/sale-bad.json", []byte("]"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "sales-csv/sales_master.csv", []byte("x"), nil))

	sales, err := repo.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "early", sales[0].ID)
	assert.Equal(t, "late", sales[1].ID)
}

func TestMirrorRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMirrorRepository(newMemBucket(t))

	_, err := repo.ReadMirror(ctx, repository.MirrorSales)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	require.NoError(t, repo.WriteMirror(ctx, repository.MirrorSales, []byte("a,b")))
	data, err := repo.ReadMirror(ctx, repository.MirrorSales)
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(data))

	err = repo.WriteMirror(ctx, repository.MirrorKind("winners"), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOpenBucket_FileLayout(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	bucket, err := OpenBucket(ctx, &config.LedgerConfig{Driver: LedgerDriverFile, DataDir: dir})
	require.NoError(t, err)
	defer bucket.Close()

	require.NoError(t, NewProductRepository(bucket, newDiscardLogger()).PutProduct(ctx, &entity.Product{ID: "p1", Name: "Lamp"}))
	require.NoError(t, NewSaleRepository(bucket, newDiscardLogger()).PutSale(ctx, &entity.Sale{ID: "s1", Quantity: 1}))
	require.NoError(t, NewMirrorRepository(bucket).WriteMirror(ctx, repository.MirrorProducts, []byte("h")))

	for _, rel := range []string{
		"products/product-p1.json",
		"sales/sale-s1.json",
		"products-csv/products_master.csv",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}

func TestOpenBucket_UnknownDriver(t *testing.T) {
	_, err := OpenBucket(context.Background(), &config.LedgerConfig{Driver: "s4"})

	assert.Error(t, err)
}
