package model

import (
	"encoding/json"
	"strings"

	"expo/internal/domain/entity"
)

// SaleModel is the JSON document stored at sales/sale-<id>.json.
// Fields tagged legacy are only read; RepairLegacySale folds them into the
// current fields and FromSaleEntity never writes them.
type SaleModel struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"productId"`
	ProductNumber   string     `json:"productNumber"`
	ProductName     string     `json:"productName"`
	ProductOwner    string     `json:"productOwner"`
	ProductCategory string     `json:"productCategory"`
	Quantity        FlexNumber `json:"quantity"`
	Price           FlexNumber `json:"price"`
	Total           FlexNumber `json:"total"`
	Currency        string     `json:"currency"`
	PaymentMethod   string     `json:"paymentMethod"`
	BBPayID         string     `json:"bbpayId"`
	TransactionID   string     `json:"transactionId"`
	BuyerName       string     `json:"buyerName"`
	BuyerEmail      string     `json:"buyerEmail"`
	BuyerPhone      string     `json:"buyerPhone"`
	PurchaseDate    string     `json:"purchaseDate"`
	PaymentStatus   string     `json:"paymentStatus"`
	Status          string     `json:"status"`
	PromoCode       string     `json:"promoCode,omitempty"`
	DiscountAmount  float64    `json:"discountAmount,omitempty"`

	// legacy
	UnitPrice     *FlexNumber     `json:"unitPrice,omitempty"`
	UPIID         string          `json:"upiId,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	Customer      json.RawMessage `json:"customer,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Date          string          `json:"date,omitempty"`
}

// legacyCustomer is the object form of the legacy "customer" field.
type legacyCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RepairLegacySale converts a stored document into a Sale, folding legacy
// aliases into current fields, coercing numbers, and normalizing the payment
// method. Defaults that depend on the clock are not applied.
func RepairLegacySale(m *SaleModel) *entity.Sale {
	if m == nil {
		return nil
	}

	customer := m.legacyCustomer()

	price := m.Price
	if !price.Valid && m.UnitPrice != nil {
		price = *m.UnitPrice
	}

	sale := &entity.Sale{
		ID:                m.ID,
		ProductID:         m.ProductID,
		ProductNumber:     m.ProductNumber,
		ProductName:       m.ProductName,
		ProductOwner:      m.ProductOwner,
		ProductCategory:   m.ProductCategory,
		Quantity:          int(m.Quantity.Or(1)),
		Price:             price.Or(0),
		Total:             m.Total.Or(0),
		Currency:          strings.TrimSpace(m.Currency),
		PaymentMethod:     entity.NormalizePaymentMethod(m.PaymentMethod),
		PaymentIdentifier: firstNonEmpty(m.BBPayID, m.UPIID),
		TransactionID:     m.TransactionID,
		BuyerName:         firstNonEmpty(m.BuyerName, m.CustomerName, customer.Name),
		BuyerEmail:        firstNonEmpty(m.BuyerEmail, m.CustomerEmail, customer.Email),
		BuyerPhone:        firstNonEmpty(m.BuyerPhone, m.CustomerPhone, customer.Phone),
		PurchaseDate:      ParseTimestamp(firstNonEmpty(m.PurchaseDate, m.Date)),
		PaymentStatus:     entity.PaymentStatus(m.PaymentStatus),
		Status:            entity.SaleStatus(m.Status),
		PromoCode:         m.PromoCode,
		DiscountAmount:    m.DiscountAmount,
	}

	sale.NormalizeAmounts()
	if sale.Currency == "" {
		sale.Currency = entity.DefaultCurrency
	}
	if sale.PaymentStatus == "" {
		sale.PaymentStatus = entity.PaymentStatusSuccess
	}
	if sale.Status == "" {
		sale.Status = entity.SaleStatusCompleted
	}

	return sale
}

func (m *SaleModel) legacyCustomer() legacyCustomer {
	if len(m.Customer) == 0 {
		return legacyCustomer{}
	}

	var name string
	if err := json.Unmarshal(m.Customer, &name); err == nil {
		return legacyCustomer{Name: name}
	}

	var obj legacyCustomer
	if err := json.Unmarshal(m.Customer, &obj); err == nil {
		return obj
	}

	return legacyCustomer{}
}
