// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"time"

	"expo/internal/domain/entity"
)

// ChargeRequest asks a gateway to settle an amount against a payer identifier.
type ChargeRequest struct {
	Method     entity.PaymentMethod
	Identifier string
	// PIN is the payer secret. Empty means the caller has already authorized the charge.
	PIN      string
	Amount   float64 // Unit amount.
	Quantity int
	Currency string
}

// ChargeResult is the gateway's confirmation of a settled charge.
type ChargeResult struct {
	TransactionID string               `json:"transactionId"`
	Method        entity.PaymentMethod `json:"paymentMethod"`
	Identifier    string               `json:"bbpayId"`
	Amount        float64              `json:"amount"`
	Quantity      int                  `json:"quantity"`
	TotalAmount   float64              `json:"totalAmount"`
	Currency      string               `json:"currency"`
	Timestamp     time.Time            `json:"timestamp"`
}

// PaymentGateway is the seam between checkout and a payment provider.
// The bundled implementation is a deterministic mock; a real provider plugs in here.
type PaymentGateway interface {
	// Method returns the payment method this gateway settles.
	Method() entity.PaymentMethod

	// ValidateIdentifier checks the payer identifier format.
	ValidateIdentifier(identifier string) error

	// Charge settles the request. A wrong PIN yields domainerrors.ErrIncorrectCredential.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
