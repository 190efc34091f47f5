package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies how a sale was paid.
type PaymentMethod string

const (
	PaymentMethodBBPay  PaymentMethod = "bbpay"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBBPay, PaymentMethodCard, PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// NormalizePaymentMethod maps legacy labels onto the current enum.
// Anything mentioning UPI was the predecessor of BBPAY.
func NormalizePaymentMethod(raw string) PaymentMethod {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "upi") {
		return PaymentMethodBBPay
	}
	if m := PaymentMethod(lower); m.IsValid() {
		return m
	}

	return PaymentMethod(trimmed)
}

// PaymentStatus is the settlement outcome recorded on a sale.
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// SaleStatus is the fulfilment status of a sale.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
)

// DefaultCurrency is used when a sale does not name one.
const DefaultCurrency = "INR"

// Sale is one append-only ledger line. Product fields are copied at the
// time of sale and are not kept in sync with later product edits.
type Sale struct {
	ID                string        `json:"id"`
	ProductID         string        `json:"productId"`
	ProductNumber     string        `json:"productNumber"`
	ProductName       string        `json:"productName"`
	ProductOwner      string        `json:"productOwner"`
	ProductCategory   string        `json:"productCategory"`
	Quantity          int           `json:"quantity"`
	Price             float64       `json:"price"`
	Total             float64       `json:"total"`
	Currency          string        `json:"currency"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	PaymentIdentifier string        `json:"paymentIdentifier"`
	TransactionID     string        `json:"transactionId"`
	BuyerName         string        `json:"buyerName"`
	BuyerEmail        string        `json:"buyerEmail"`
	BuyerPhone        string        `json:"buyerPhone"`
	PurchaseDate      time.Time     `json:"purchaseDate"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	Status            SaleStatus    `json:"status"`
	PromoCode         string        `json:"promoCode,omitempty"`
	DiscountAmount    float64       `json:"discountAmount,omitempty"`
}

// NewSaleID returns a fresh opaque sale identifier.
func NewSaleID() string {
	return "sale_" + uuid.NewString()
}

// NormalizeAmounts coerces the numeric fields so that quantity is at least
// one, price is a finite non-negative number, and total is price times
// quantity whenever the recorded total is missing or unusable.
func (s *Sale) NormalizeAmounts() {
	if s.Quantity < 1 {
		s.Quantity = 1
	}
	if !isFinite(s.Price) || s.Price < 0 {
		s.Price = 0
	}
	if !isFinite(s.Total) || s.Total <= 0 {
		s.Total = s.Price * float64(s.Quantity)
	}
}

// ApplyDefaults fills server-assigned fields and normalizes the payment method.
func (s *Sale) ApplyDefaults(now time.Time) {
	if s.ID == "" {
		s.ID = NewSaleID()
	}
	if s.PurchaseDate.IsZero() {
		s.PurchaseDate = now.UTC()
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = PaymentStatusSuccess
	}
	if s.Status == "" {
		s.Status = SaleStatusCompleted
	}
	if strings.TrimSpace(s.Currency) == "" {
		s.Currency = DefaultCurrency
	}
	s.PaymentMethod = NormalizePaymentMethod(string(s.PaymentMethod))
	s.NormalizeAmounts()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
