package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"
	mockUsecase "expo/internal/mocks/usecase"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockLedgerUsecase) {
	t.Helper()

	ledger := mockUsecase.NewMockLedgerUsecase(t)
	h := NewProductHandler(ProductHandlerParams{LedgerUC: ledger, Logger: newTestLogger()})

	e := newTestEcho()
	e.GET("/api/products", h.ListProducts)
	e.GET("/api/products/categories", h.ListCategories)
	e.GET("/api/products/:id", h.GetProduct)
	e.POST("/api/products", h.CreateProduct)

	return e, ledger
}

func TestProductHandler_ListProducts(t *testing.T) {
	e, ledger := newProductTestServer(t)
	ledger.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{
		{ID: "prod_1", Name: "Solar Lamp", MoneyEarned: 598, TotalSales: 2},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/products", "")

	assertStatus(t, rec, http.StatusOK)
	products := decodeBody[[]entity.Product](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "Solar Lamp", products[0].Name)
	assert.Equal(t, 598.0, products[0].MoneyEarned)
}

func TestProductHandler_ListProducts_CSV(t *testing.T) {
	e, ledger := newProductTestServer(t)
	ledger.EXPECT().ExportCSV(mock.Anything, repository.MirrorProducts).Return([]byte("Product ID\nprod_1"), nil)

	rec := doRequest(e, http.MethodGet, "/api/products?format=csv", "")

	assertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "products_report.csv")
	assert.Equal(t, "Product ID\nprod_1", rec.Body.String())
	ledger.AssertNotCalled(t, "ListProducts", mock.Anything)
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, ledger := newProductTestServer(t)
		ledger.EXPECT().GetProduct(mock.Anything, "prod_1").Return(&entity.Product{ID: "prod_1"}, nil)

		rec := doRequest(e, http.MethodGet, "/api/products/prod_1", "")

		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, "prod_1", decodeBody[entity.Product](t, rec).ID)
	})

	t.Run("not found", func(t *testing.T) {
		e, ledger := newProductTestServer(t)
		ledger.EXPECT().GetProduct(mock.Anything, "nope").Return(nil, domainerrors.ErrProductNotFound)

		rec := doRequest(e, http.MethodGet, "/api/products/nope", "")

		assertStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("storage failure goes through the error handler", func(t *testing.T) {
		e, ledger := newProductTestServer(t)
		ledger.EXPECT().GetProduct(mock.Anything, "prod_1").
			Return(nil, domainerrors.ErrStorageUnavailable.WithDetails("bucket offline"))

		rec := doRequest(e, http.MethodGet, "/api/products/prod_1", "")

		assertStatus(t, rec, http.StatusInternalServerError)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "STORAGE_UNAVAILABLE", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestProductHandler_ListCategories(t *testing.T) {
	e, _ := newProductTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/products/categories", "")

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody[struct {
		Categories []entity.Category `json:"categories"`
	}](t, rec)
	assert.Equal(t, entity.ProductCategories(), body.Categories)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	e, ledger := newProductTestServer(t)
	ledger.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.Name == "Solar Lamp" && in.Owner == "Meera" && in.Price != nil && *in.Price == 0 &&
			in.Category == "Home & Garden" && len(in.Tags) == 2
	})).Return(&entity.Product{ID: "prod_1", Name: "Solar Lamp"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/products",
		`{"name":"Solar Lamp","owner":"Meera","price":0,"category":"Home & Garden","tags":["eco","light"]}`)

	assertStatus(t, rec, http.StatusCreated)
	body := decodeBody[productCreatedResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "prod_1", body.Product.ID)
	assert.Len(t, body.Categories, len(entity.ProductCategories()))
}

func TestProductHandler_CreateProduct_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode string
		wantData bool
	}{
		{
			name:     "missing price",
			body:     `{"name":"Solar Lamp","owner":"Meera"}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "missing owner",
			body:     `{"name":"Solar Lamp","price":10}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "malformed body",
			body:     `{"name":`,
			wantCode: "INVALID_INPUT",
		},
		{
			name:     "unknown category lists the valid ones",
			body:     `{"name":"Solar Lamp","owner":"Meera","price":10,"category":"Gadgets"}`,
			ucErr:    domainerrors.ErrInvalidCategory.WithDetails("Gadgets"),
			wantCode: "INVALID_CATEGORY",
			wantData: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ledger := newProductTestServer(t)
			if tt.ucErr != nil {
				ledger.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doRequest(e, http.MethodPost, "/api/products", tt.body)

			assertStatus(t, rec, http.StatusBadRequest)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantData {
				var data categoriesResponse
				require.NoError(t, json.Unmarshal(env.Data, &data))
				assert.Equal(t, entity.ProductCategories(), data.Categories)
			} else {
				assert.Empty(t, env.Data)
				ledger.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
			}
		})
	}
}
