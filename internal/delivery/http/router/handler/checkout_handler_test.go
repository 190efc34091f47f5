package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expo/internal/delivery/http/middleware"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	mockUsecase "expo/internal/mocks/usecase"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken     = "signed-token"
	testSessionID = "sess-1"
)

func newCheckoutTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockCheckoutUsecase) {
	t.Helper()

	checkout := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkout, Logger: newTestLogger()})
	auth := middleware.NewSessionMiddleware(checkout).Authenticate

	e := newTestEcho()
	e.POST("/api/checkout/sessions", h.OpenSession)
	g := e.Group("/api/checkout", auth)
	g.GET("", h.GetCheckout)
	g.POST("/cart/items", h.AddItem)
	g.PATCH("/cart/items", h.UpdateItem)
	g.DELETE("/cart/items", h.RemoveItem)
	g.DELETE("/cart", h.ClearCart)
	g.POST("/cart/promo", h.ApplyPromo)
	g.POST("/start", h.Start)
	g.POST("/method", h.SelectMethod)
	g.POST("/details", h.EnterDetails)
	g.POST("/pay", h.Pay)
	g.POST("/back", h.GoBack)
	g.GET("/qr", h.PaymentQR)

	return e, checkout
}

func expectResolved(checkout *mockUsecase.MockCheckoutUsecase) {
	checkout.EXPECT().ResolveSession(mock.Anything, testToken).Return(testSessionID, nil).Maybe()
}

func authed(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	return doRequest(e, method, target, body, echo.HeaderAuthorization, "Bearer "+testToken)
}

func view(step entity.CheckoutStep) *entity.CheckoutView {
	return &entity.CheckoutView{ID: testSessionID, Step: step, Cart: entity.NewCart()}
}

func TestCheckoutHandler_OpenSession(t *testing.T) {
	e, checkout := newCheckoutTestServer(t)
	expires := time.Date(2025, 1, 15, 11, 30, 0, 0, time.UTC)
	checkout.EXPECT().OpenSession(mock.Anything).Return(&usecase.CheckoutToken{
		Token:     testToken,
		ExpiresAt: expires,
		Checkout:  view(entity.StepCart),
	}, nil)

	rec := doRequest(e, http.MethodPost, "/api/checkout/sessions", "")

	assertStatus(t, rec, http.StatusCreated)
	token := decodeBody[usecase.CheckoutToken](t, rec)
	assert.Equal(t, testToken, token.Token)
	assert.True(t, token.ExpiresAt.Equal(expires))
	require.NotNil(t, token.Checkout)
	assert.Equal(t, entity.StepCart, token.Checkout.Step)
}

func TestCheckoutHandler_Authentication(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		resolveErr error
		wantCode   string
	}{
		{name: "missing header", wantCode: "SESSION_NOT_FOUND"},
		{name: "not a bearer token", header: "Basic abc", wantCode: "SESSION_NOT_FOUND"},
		{name: "expired session", header: "Bearer stale", resolveErr: domainerrors.ErrSessionNotFound, wantCode: "SESSION_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, checkout := newCheckoutTestServer(t)
			if tt.resolveErr != nil {
				checkout.EXPECT().ResolveSession(mock.Anything, "stale").Return("", tt.resolveErr)
			}

			var headers []string
			if tt.header != "" {
				headers = []string{echo.HeaderAuthorization, tt.header}
			}
			rec := doRequest(e, http.MethodGet, "/api/checkout", "", headers...)

			assertStatus(t, rec, http.StatusUnauthorized)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
			checkout.AssertNotCalled(t, "GetCheckout", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckoutHandler_CartRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		expect func(m *mockUsecase.MockCheckoutUsecase)
	}{
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/api/checkout",
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().GetCheckout(mock.Anything, testSessionID).Return(view(entity.StepCart), nil)
			},
		},
		{
			name:   "add",
			method: http.MethodPost,
			path:   "/api/checkout/cart/items",
			body:   `{"productId":"lamp","quantity":2,"selectedSize":"M"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().AddItem(mock.Anything, testSessionID, &usecase.AddItemInput{
					ProductID:    "lamp",
					Quantity:     2,
					SelectedSize: "M",
				}).Return(view(entity.StepCart), nil)
			},
		},
		{
			name:   "update",
			method: http.MethodPatch,
			path:   "/api/checkout/cart/items",
			body:   `{"productId":"lamp","quantity":0,"selectedSize":"M","selectedColor":"red"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().UpdateQuantity(mock.Anything, testSessionID, "lamp", entity.Variant{Size: "M", Color: "red"}, 0).
					Return(view(entity.StepCart), nil)
			},
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			path:   "/api/checkout/cart/items",
			body:   `{"productId":"mug"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().RemoveItem(mock.Anything, testSessionID, "mug", entity.Variant{}).Return(view(entity.StepCart), nil)
			},
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			path:   "/api/checkout/cart",
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().ClearCart(mock.Anything, testSessionID).Return(view(entity.StepCart), nil)
			},
		},
		{
			name:   "promo",
			method: http.MethodPost,
			path:   "/api/checkout/cart/promo",
			body:   `{"code":"expo10"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().ApplyPromoCode(mock.Anything, testSessionID, "expo10").
					Return(&usecase.PromoResult{Applied: true, Checkout: view(entity.StepCart)}, nil)
			},
		},
		{
			name:   "start",
			method: http.MethodPost,
			path:   "/api/checkout/start",
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().StartCheckout(mock.Anything, testSessionID).Return(view(entity.StepPaymentMethod), nil)
			},
		},
		{
			name:   "legacy method label",
			method: http.MethodPost,
			path:   "/api/checkout/method",
			body:   `{"method":"UPI"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().SelectPaymentMethod(mock.Anything, testSessionID, entity.PaymentMethodBBPay).
					Return(view(entity.StepMethodDetails), nil)
			},
		},
		{
			name:   "details",
			method: http.MethodPost,
			path:   "/api/checkout/details",
			body:   `{"identifier":"ravi@bbpay","name":"Ravi","email":"ravi@example.com"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().EnterPaymentDetails(mock.Anything, testSessionID, "ravi@bbpay",
					entity.BuyerInfo{Name: "Ravi", Email: "ravi@example.com"}).
					Return(view(entity.StepMethodDetails), nil)
			},
		},
		{
			name:   "back",
			method: http.MethodPost,
			path:   "/api/checkout/back",
			body:   `{"to":"payment_method"}`,
			expect: func(m *mockUsecase.MockCheckoutUsecase) {
				m.EXPECT().GoBack(mock.Anything, testSessionID, entity.StepPaymentMethod).Return(view(entity.StepPaymentMethod), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, checkout := newCheckoutTestServer(t)
			expectResolved(checkout)
			tt.expect(checkout)

			rec := authed(e, tt.method, tt.path, tt.body)

			assertStatus(t, rec, http.StatusOK)
		})
	}
}

func TestCheckoutHandler_RejectedBodies(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "item without product", path: "/api/checkout/cart/items", body: `{"quantity":1}`},
		{name: "method missing", path: "/api/checkout/method", body: `{}`},
		{name: "details bad email", path: "/api/checkout/details", body: `{"identifier":"ravi@bbpay","email":"not-an-email"}`},
		{name: "pay without pin", path: "/api/checkout/pay", body: `{}`},
		{name: "back to processing", path: "/api/checkout/back", body: `{"to":"processing"}`},
		{name: "malformed", path: "/api/checkout/pay", body: `{"pin":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, checkout := newCheckoutTestServer(t)
			expectResolved(checkout)

			rec := authed(e, http.MethodPost, tt.path, tt.body)

			assertStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestCheckoutHandler_Pay(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, checkout := newCheckoutTestServer(t)
		expectResolved(checkout)
		done := view(entity.StepSuccess)
		done.Receipt = &entity.Receipt{TransactionID: "BBPAY_1", Total: 628.2, SaleIDs: []string{"sale_1", "sale_2"}}
		checkout.EXPECT().Pay(mock.Anything, testSessionID, "1908").Return(done, nil)

		rec := authed(e, http.MethodPost, "/api/checkout/pay", `{"pin":"1908"}`)

		assertStatus(t, rec, http.StatusOK)
		got := decodeBody[entity.CheckoutView](t, rec)
		assert.Equal(t, entity.StepSuccess, got.Step)
		require.NotNil(t, got.Receipt)
		assert.Equal(t, []string{"sale_1", "sale_2"}, got.Receipt.SaleIDs)
	})

	t.Run("declined returns the failure step", func(t *testing.T) {
		e, checkout := newCheckoutTestServer(t)
		expectResolved(checkout)
		failed := view(entity.StepFailure)
		failed.LastError = "Incorrect PIN. Please try again."
		checkout.EXPECT().Pay(mock.Anything, testSessionID, "0000").Return(nil, domainerrors.ErrIncorrectCredential)
		checkout.EXPECT().GetCheckout(mock.Anything, testSessionID).Return(failed, nil)

		rec := authed(e, http.MethodPost, "/api/checkout/pay", `{"pin":"0000"}`)

		assertStatus(t, rec, http.StatusPaymentRequired)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INCORRECT_CREDENTIAL", env.Error.Code)
		assert.Contains(t, string(env.Data), `"step":"failure"`)
		assert.Contains(t, string(env.Data), "Incorrect PIN")
	})

	t.Run("busy has no session data", func(t *testing.T) {
		e, checkout := newCheckoutTestServer(t)
		expectResolved(checkout)
		checkout.EXPECT().Pay(mock.Anything, testSessionID, "1908").Return(nil, domainerrors.ErrCheckoutBusy)
		checkout.EXPECT().GetCheckout(mock.Anything, testSessionID).Return(view(entity.StepProcessing), nil)

		rec := authed(e, http.MethodPost, "/api/checkout/pay", `{"pin":"1908"}`)

		assertStatus(t, rec, http.StatusConflict)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "CHECKOUT_BUSY", env.Error.Code)
		assert.Empty(t, env.Data)
	})

	t.Run("server error skips the session lookup", func(t *testing.T) {
		e, checkout := newCheckoutTestServer(t)
		expectResolved(checkout)
		checkout.EXPECT().Pay(mock.Anything, testSessionID, "1908").Return(nil, domainerrors.ErrStorageUnavailable)

		rec := authed(e, http.MethodPost, "/api/checkout/pay", `{"pin":"1908"}`)

		assertStatus(t, rec, http.StatusInternalServerError)
		checkout.AssertNotCalled(t, "GetCheckout", mock.Anything, mock.Anything)
	})
}

func TestCheckoutHandler_PaymentQR(t *testing.T) {
	e, checkout := newCheckoutTestServer(t)
	expectResolved(checkout)
	png := []byte{0x89, 'P', 'N', 'G'}
	checkout.EXPECT().PaymentQR(mock.Anything, testSessionID).Return(png, nil)

	rec := authed(e, http.MethodGet, "/api/checkout/qr", "")

	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCheckoutHandler_StateErrors(t *testing.T) {
	e, checkout := newCheckoutTestServer(t)
	expectResolved(checkout)
	checkout.EXPECT().StartCheckout(mock.Anything, testSessionID).Return(nil, domainerrors.ErrEmptyCart)

	rec := authed(e, http.MethodPost, "/api/checkout/start", "")

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "EMPTY_CART", decodeEnvelope(t, rec).Error.Code)
}
