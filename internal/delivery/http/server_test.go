package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expo/config"
	deliverycontext "expo/internal/delivery/context"
	"expo/internal/delivery/http/middleware"
	"expo/internal/delivery/http/router"
	"expo/internal/delivery/http/router/handler"
	"expo/internal/domain/entity"
	mockUsecase "expo/internal/mocks/usecase"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	echo     *echo.Echo
	ledger   *mockUsecase.MockLedgerUsecase
	checkout *mockUsecase.MockCheckoutUsecase
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ledger := mockUsecase.NewMockLedgerUsecase(t)
	checkout := mockUsecase.NewMockCheckoutUsecase(t)
	payments := mockUsecase.NewMockPaymentUsecase(t)
	reports := mockUsecase.NewMockReportUsecase(t)

	e := NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		ProductHandler:    handler.NewProductHandler(handler.ProductHandlerParams{LedgerUC: ledger, Logger: logger}),
		SaleHandler:       handler.NewSaleHandler(handler.SaleHandlerParams{LedgerUC: ledger, Logger: logger}),
		PaymentHandler:    handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: payments, Logger: logger}),
		WinnersHandler:    handler.NewWinnersHandler(handler.WinnersHandlerParams{ReportUC: reports, Logger: logger}),
		CheckoutHandler:   handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: checkout, Logger: logger}),
		SessionMiddleware: middleware.NewSessionMiddleware(checkout),
	}).RegisterRoutes(e)

	return &testApp{echo: e, ledger: ledger, checkout: checkout}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := app.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = app.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "HTTP_ERROR", body["error"].(map[string]any)["code"])
}

func TestServer_BodyLimit(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"`+strings.Repeat("x", 2048)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := app.do(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	app.ledger.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestServer_CheckoutRoutesNeedASession(t *testing.T) {
	app := newTestApp(t)
	app.checkout.EXPECT().OpenSession(mock.Anything).Return(&usecase.CheckoutToken{Token: "tok"}, nil)
	app.checkout.EXPECT().ResolveSession(mock.Anything, "tok").Return("sess-1", nil)
	app.checkout.EXPECT().GetCheckout(mock.Anything, "sess-1").
		Return(&entity.CheckoutView{ID: "sess-1", Step: entity.StepCart, Cart: entity.NewCart()}, nil)

	rec := app.do(httptest.NewRequest(http.MethodPost, "/api/checkout/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/checkout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/checkout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec = app.do(req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestServer_ProductRoutes(t *testing.T) {
	app := newTestApp(t)
	app.ledger.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{}, nil)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/products/categories", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	app.ledger.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}
