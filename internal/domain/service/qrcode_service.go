package service

// PaymentQRPayload is the pay-to data encoded in a checkout QR code
type PaymentQRPayload struct {
	Type      string  `json:"type"`
	SessionID string  `json:"session_id"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	PayURL    string  `json:"pay_url,omitempty"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePaymentQR renders the payload as a PNG QR code
	GeneratePaymentQR(payload PaymentQRPayload) ([]byte, error)

	// ParsePaymentQR decodes QR text back into a payload
	ParsePaymentQR(qrData string) (*PaymentQRPayload, error)
}
