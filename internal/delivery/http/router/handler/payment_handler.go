package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"expo/internal/delivery/http/response"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves direct single-product payments
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CustomerInfo is the optional buyer contact block
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentRequest is the body of POST /api/payment. Amount and quantity may
// arrive as numbers or numeric strings.
type PaymentRequest struct {
	ProductID       string        `json:"productId"`
	ProductNumber   string        `json:"productNumber"`
	ProductName     string        `json:"productName"`
	ProductOwner    string        `json:"productOwner"`
	ProductCategory string        `json:"productCategory"`
	Amount          flexNumber    `json:"amount"`
	Quantity        flexNumber    `json:"quantity"`
	BBPayID         string        `json:"bbpayId"`
	Currency        string        `json:"currency"`
	CustomerInfo    *CustomerInfo `json:"customerInfo"`
}

// ProcessPayment charges the gateway and records the sale
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	amount, ok := req.Amount.Float()
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("Invalid amount provided"))
	}
	quantity, ok := req.Quantity.Int()
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("Invalid quantity provided"))
	}

	input := &usecase.PaymentRequest{
		ProductID:       req.ProductID,
		ProductNumber:   req.ProductNumber,
		ProductName:     req.ProductName,
		ProductOwner:    req.ProductOwner,
		ProductCategory: req.ProductCategory,
		Amount:          amount,
		Quantity:        quantity,
		BBPayID:         req.BBPayID,
		Currency:        req.Currency,
	}
	if req.CustomerInfo != nil {
		input.Customer = entity.BuyerInfo{
			Name:  req.CustomerInfo.Name,
			Email: req.CustomerInfo.Email,
			Phone: req.CustomerInfo.Phone,
		}
	}

	outcome, err := h.paymentUC.ProcessPayment(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// flexNumber accepts a JSON number, a numeric string, or nothing at all.
// An absent or empty value reads as zero.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = flexNumber(strings.TrimSpace(s))

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = flexNumber(num.String())

	return nil
}

// Float parses the value as a decimal amount
func (n flexNumber) Float() (float64, bool) {
	if n == "" {
		return 0, true
	}

	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return 0, false
	}

	return d.InexactFloat64(), true
}

// Int parses the value as a whole count, dropping any fraction
func (n flexNumber) Int() (int, bool) {
	if n == "" {
		return 0, true
	}

	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return 0, false
	}

	return int(d.IntPart()), true
}
