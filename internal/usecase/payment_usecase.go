package usecase

import (
	"context"

	"expo/internal/domain/entity"
)

// PaymentRequest is a direct single-product BBPAY payment
type PaymentRequest struct {
	ProductID       string
	ProductNumber   string
	ProductName     string
	ProductOwner    string
	ProductCategory string
	Amount          float64
	Quantity        int
	BBPayID         string
	Currency        string
	Customer        entity.BuyerInfo
}

// PaymentOutcome is the result of a settled direct payment
type PaymentOutcome struct {
	Success       bool         `json:"success"`
	TransactionID string       `json:"transactionId"`
	SaleID        string       `json:"saleId"`
	TotalAmount   float64      `json:"totalAmount"`
	SaleRecord    *entity.Sale `json:"saleRecord"`
	Message       string       `json:"message"`
}

// PaymentUsecase defines the direct payment use case
type PaymentUsecase interface {
	// ProcessPayment charges the gateway and writes exactly one sale
	ProcessPayment(ctx context.Context, req *PaymentRequest) (*PaymentOutcome, error)
}
