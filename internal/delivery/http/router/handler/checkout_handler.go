package handler

import (
	"log/slog"
	"net/http"

	"expo/internal/delivery/http/middleware"
	"expo/internal/delivery/http/response"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/errors"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the cart and the multi-step checkout
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CartItemRequest identifies a cart line and, for add and update, a quantity
type CartItemRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

func (r CartItemRequest) variant() entity.Variant {
	return entity.Variant{Size: r.SelectedSize, Color: r.SelectedColor}
}

// PromoRequest is the body of POST /api/checkout/cart/promo
type PromoRequest struct {
	Code string `json:"code"`
}

// MethodRequest is the body of POST /api/checkout/method
type MethodRequest struct {
	Method string `json:"method" validate:"required"`
}

// DetailsRequest is the body of POST /api/checkout/details
type DetailsRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
}

// PayRequest is the body of POST /api/checkout/pay
type PayRequest struct {
	PIN string `json:"pin" validate:"required"`
}

// BackRequest is the body of POST /api/checkout/back
type BackRequest struct {
	To string `json:"to" validate:"required,oneof=cart payment_method"`
}

// OpenSession starts a new checkout session and returns its token
func (h *CheckoutHandler) OpenSession(c echo.Context) error {
	token, err := h.checkoutUC.OpenSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// GetCheckout returns the session state and quote
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.GetCheckout(c.Request().Context(), sessionID)
	})
}

// AddItem adds a product to the cart
func (h *CheckoutHandler) AddItem(c echo.Context) error {
	var req CartItemRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.AddItem(c.Request().Context(), sessionID, &usecase.AddItemInput{
			ProductID:     req.ProductID,
			Quantity:      req.Quantity,
			SelectedSize:  req.SelectedSize,
			SelectedColor: req.SelectedColor,
		})
	})
}

// UpdateItem sets a line quantity
func (h *CheckoutHandler) UpdateItem(c echo.Context) error {
	var req CartItemRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.UpdateQuantity(c.Request().Context(), sessionID, req.ProductID, req.variant(), req.Quantity)
	})
}

// RemoveItem drops a cart line
func (h *CheckoutHandler) RemoveItem(c echo.Context) error {
	var req CartItemRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.RemoveItem(c.Request().Context(), sessionID, req.ProductID, req.variant())
	})
}

// ClearCart empties the cart
func (h *CheckoutHandler) ClearCart(c echo.Context) error {
	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.ClearCart(c.Request().Context(), sessionID)
	})
}

// ApplyPromo replaces the applied promo code
func (h *CheckoutHandler) ApplyPromo(c echo.Context) error {
	var req PromoRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.ApplyPromoCode(c.Request().Context(), sessionID, req.Code)
	})
}

// Start leaves the cart step
func (h *CheckoutHandler) Start(c echo.Context) error {
	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.StartCheckout(c.Request().Context(), sessionID)
	})
}

// SelectMethod chooses how to pay
func (h *CheckoutHandler) SelectMethod(c echo.Context) error {
	var req MethodRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.SelectPaymentMethod(c.Request().Context(), sessionID, entity.NormalizePaymentMethod(req.Method))
	})
}

// EnterDetails records the payer identifier and contact data
func (h *CheckoutHandler) EnterDetails(c echo.Context) error {
	var req DetailsRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	buyer := entity.BuyerInfo{Name: req.Name, Email: req.Email, Phone: req.Phone}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.EnterPaymentDetails(c.Request().Context(), sessionID, req.Identifier, buyer)
	})
}

// Pay charges the cart total
func (h *CheckoutHandler) Pay(c echo.Context) error {
	var req PayRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionNotFound)
	}

	view, err := h.checkoutUC.Pay(c.Request().Context(), sessionID, req.PIN)
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
			return response.HandleAppError(c, err)
		}

		// A declined payment leaves the session on the failure step; send it with the error.
		current, getErr := h.checkoutUC.GetCheckout(c.Request().Context(), sessionID)
		if getErr != nil || current.Step != entity.StepFailure {
			return response.HandleAppError(c, err)
		}

		return response.ErrorWithData(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details(), current)
	}

	return response.Success(c, http.StatusOK, view)
}

// GoBack returns to the cart or to method selection
func (h *CheckoutHandler) GoBack(c echo.Context) error {
	var req BackRequest
	if err := decode(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(sessionID string) (any, error) {
		return h.checkoutUC.GoBack(c.Request().Context(), sessionID, entity.CheckoutStep(req.To))
	})
}

// PaymentQR renders the pending payment as a PNG QR code
func (h *CheckoutHandler) PaymentQR(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionNotFound)
	}

	png, err := h.checkoutUC.PaymentQR(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// decode binds and validates a request body
func decode(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func (h *CheckoutHandler) respond(c echo.Context, call func(sessionID string) (any, error)) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionNotFound)
	}

	body, err := call(sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, body)
}
