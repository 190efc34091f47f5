package qrcode

import (
	"encoding/json"
	"strings"

	"expo/config"
	"expo/internal/domain/service"
	"expo/internal/errors"

	"github.com/skip2/go-qrcode"
)

// PaymentQRType marks QR payloads produced for checkout payments
const PaymentQRType = "payment"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GeneratePaymentQR generates a PNG QR code carrying the pay-to payload
func (s *qrcodeService) GeneratePaymentQR(payload service.PaymentQRPayload) ([]byte, error) {
	payload.Type = PaymentQRType
	if payload.PayURL == "" && s.baseURL != "" {
		payload.PayURL = s.baseURL + "/pay"
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePaymentQR parses QR code text and returns the payment payload
func (s *qrcodeService) ParsePaymentQR(qrData string) (*service.PaymentQRPayload, error) {
	var payload service.PaymentQRPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != PaymentQRType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.SessionID == "" {
		return nil, errors.New("QR code is missing the session ID")
	}

	return &payload, nil
}
