package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"expo/internal/delivery/http/response"
	"expo/internal/domain/entity"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatCSV = "csv"

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// SaleHandler serves the sales ledger
type SaleHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// CreateSaleRequest is the body of POST /api/sales. The payer identifier is
// accepted under its current name and the older bbpayId / upiId names.
type CreateSaleRequest struct {
	ProductID         string     `json:"productId" validate:"required"`
	ProductNumber     string     `json:"productNumber"`
	ProductName       string     `json:"productName"`
	ProductOwner      string     `json:"productOwner"`
	ProductCategory   string     `json:"productCategory"`
	Quantity          int        `json:"quantity" validate:"gte=0"`
	Price             float64    `json:"price" validate:"gte=0"`
	Total             float64    `json:"total"`
	Currency          string     `json:"currency"`
	PaymentMethod     string     `json:"paymentMethod"`
	PaymentIdentifier string     `json:"paymentIdentifier"`
	BBPayID           string     `json:"bbpayId"`
	UPIID             string     `json:"upiId"`
	TransactionID     string     `json:"transactionId"`
	BuyerName         string     `json:"buyerName"`
	BuyerEmail        string     `json:"buyerEmail"`
	BuyerPhone        string     `json:"buyerPhone"`
	PurchaseDate      *time.Time `json:"purchaseDate"`
}

type saleCreatedResponse struct {
	Success bool         `json:"success"`
	Sale    *entity.Sale `json:"sale"`
}

// ListSales returns the filtered sales with a summary, or the filtered CSV with format=csv
func (h *SaleHandler) ListSales(c echo.Context) error {
	filter := usecase.SalesFilter{
		Status:        c.QueryParam("status"),
		PaymentMethod: c.QueryParam("paymentMethod"),
	}
	if err := echo.QueryParamsBinder(c).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	ctx := c.Request().Context()
	if c.QueryParam("format") == formatCSV {
		data, err := h.ledgerUC.ExportSalesCSV(ctx, filter)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.CSV(c, "sales_report.csv", data)
	}

	listing, err := h.ledgerUC.ListSales(ctx, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// CreateSale records a sale supplied by the client
func (h *SaleHandler) CreateSale(c echo.Context) error {
	var req CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	sale := &entity.Sale{
		ProductID:         req.ProductID,
		ProductNumber:     req.ProductNumber,
		ProductName:       req.ProductName,
		ProductOwner:      req.ProductOwner,
		ProductCategory:   req.ProductCategory,
		Quantity:          req.Quantity,
		Price:             req.Price,
		Total:             req.Total,
		Currency:          req.Currency,
		PaymentMethod:     entity.NormalizePaymentMethod(req.PaymentMethod),
		PaymentIdentifier: firstNonEmpty(req.PaymentIdentifier, req.BBPayID, req.UPIID),
		TransactionID:     req.TransactionID,
		BuyerName:         req.BuyerName,
		BuyerEmail:        req.BuyerEmail,
		BuyerPhone:        req.BuyerPhone,
	}
	if req.PurchaseDate != nil {
		sale.PurchaseDate = *req.PurchaseDate
	}

	created, err := h.ledgerUC.CreateSale(c.Request().Context(), sale)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, saleCreatedResponse{Success: true, Sale: created})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
