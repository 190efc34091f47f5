package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	mockUsecase "expo/internal/mocks/usecase"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSaleTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockLedgerUsecase) {
	t.Helper()

	ledger := mockUsecase.NewMockLedgerUsecase(t)
	h := NewSaleHandler(SaleHandlerParams{LedgerUC: ledger, Logger: newTestLogger()})

	e := newTestEcho()
	e.GET("/api/sales", h.ListSales)
	e.POST("/api/sales", h.CreateSale)

	return e, ledger
}

func TestSaleHandler_ListSales(t *testing.T) {
	e, ledger := newSaleTestServer(t)
	ledger.EXPECT().ListSales(mock.Anything, usecase.SalesFilter{
		Status:        "completed",
		PaymentMethod: "bbpay",
		Limit:         2,
		Offset:        1,
	}).Return(&usecase.SalesListing{
		SalesSummary: usecase.SalesSummary{TotalSales: 4, TotalRevenue: 1200, BBPayTransactions: 4, UniqueProducts: 2, UniqueCustomers: 3},
		Sales:        []*entity.Sale{{ID: "s2"}, {ID: "s3"}},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/sales?status=completed&paymentMethod=bbpay&limit=2&offset=1", "")

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 4, body["totalSales"])
	assert.EqualValues(t, 1200, body["totalRevenue"])
	assert.EqualValues(t, 3, body["uniqueCustomers"])
	assert.Len(t, body["sales"], 2)
}

func TestSaleHandler_ListSales_BadPaging(t *testing.T) {
	e, ledger := newSaleTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/sales?limit=ten", "")

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_QUERY", decodeEnvelope(t, rec).Error.Code)
	ledger.AssertNotCalled(t, "ListSales", mock.Anything, mock.Anything)
}

func TestSaleHandler_ListSales_CSV(t *testing.T) {
	e, ledger := newSaleTestServer(t)
	ledger.EXPECT().ExportSalesCSV(mock.Anything, usecase.SalesFilter{Status: "completed"}).Return([]byte("Sale ID"), nil)

	rec := doRequest(e, http.MethodGet, "/api/sales?status=completed&format=csv", "")

	assertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "sales_report.csv")
	assert.Equal(t, "Sale ID", rec.Body.String())
}

func TestSaleHandler_CreateSale(t *testing.T) {
	e, ledger := newSaleTestServer(t)
	ledger.EXPECT().CreateSale(mock.Anything, mock.MatchedBy(func(s *entity.Sale) bool {
		return s.ProductID == "prod_1" &&
			s.PaymentMethod == entity.PaymentMethodBBPay &&
			s.PaymentIdentifier == "meera@upi" &&
			s.Quantity == 2 && s.Price == 150 &&
			s.PurchaseDate.Equal(time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC))
	})).RunAndReturn(func(_ context.Context, s *entity.Sale) (*entity.Sale, error) {
		s.ID = "sale_1"

		return s, nil
	})

	rec := doRequest(e, http.MethodPost, "/api/sales",
		`{"productId":"prod_1","quantity":2,"price":150,"paymentMethod":"UPI-GPay","upiId":"meera@upi","purchaseDate":"2025-01-15T09:30:00Z"}`)

	assertStatus(t, rec, http.StatusCreated)
	body := decodeBody[saleCreatedResponse](t, rec)
	assert.True(t, body.Success)
	require.NotNil(t, body.Sale)
	assert.Equal(t, "sale_1", body.Sale.ID)
}

func TestSaleHandler_CreateSale_Rejected(t *testing.T) {
	t.Run("missing product", func(t *testing.T) {
		e, ledger := newSaleTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/sales", `{"quantity":1}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		ledger.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
	})

	t.Run("usecase validation", func(t *testing.T) {
		e, ledger := newSaleTestServer(t)
		ledger.EXPECT().CreateSale(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("price must be a finite number"))

		rec := doRequest(e, http.MethodPost, "/api/sales", `{"productId":"prod_1"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "price must be a finite number", decodeEnvelope(t, rec).Error.Details)
	})
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", firstNonEmpty())
}
