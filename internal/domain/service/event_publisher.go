package service

import (
	"context"
	"time"
)

// SaleEvent is emitted after a sale record has been persisted
type SaleEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	SaleID        string    `json:"sale_id"`
	ProductID     string    `json:"product_id"`
	ProductOwner  string    `json:"product_owner"`
	Quantity      int       `json:"quantity"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PurchaseDate  time.Time `json:"purchase_date"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSaleEvent publishes a sale-created event
	PublishSaleEvent(ctx context.Context, event *SaleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
