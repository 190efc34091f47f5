// Package mock provides the simulated BBPAY gateway used at the expo.
package mock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"expo/config"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/pricing"
	"expo/internal/domain/service"
	"expo/internal/errors"
	"expo/internal/util"

	"go.uber.org/fx"
)

const transactionSuffixLength = 6

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Hasher service.SecretHasher
	Logger *slog.Logger
}

// gateway settles BBPAY charges after a fixed delay.
type gateway struct {
	hasher   service.SecretHasher
	pinHash  string
	latency  time.Duration
	currency string
	logger   *slog.Logger
	now      func() time.Time
}

// NewGateway builds the mock gateway. When no PIN hash is configured the
// plaintext PIN is hashed once here and then discarded.
func NewGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Payment

	pinHash := cfg.PINHash
	if pinHash == "" {
		hashed, err := params.Hasher.Hash(cfg.PIN)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash payment PIN")
		}
		pinHash = hashed
	}

	currency := cfg.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	return &gateway{
		hasher:   params.Hasher,
		pinHash:  pinHash,
		latency:  cfg.Latency,
		currency: currency,
		logger:   params.Logger,
		now:      time.Now,
	}, nil
}

// Method returns the payment method this gateway settles.
func (g *gateway) Method() entity.PaymentMethod {
	return entity.PaymentMethodBBPay
}

// ValidateIdentifier checks the BBPAY account format.
func (g *gateway) ValidateIdentifier(identifier string) error {
	return entity.ValidateBBPayID(identifier)
}

// Charge waits for the simulated latency, verifies the PIN when one is given,
// and returns a confirmation with a fresh transaction ID.
func (g *gateway) Charge(ctx context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	if req.Method != "" && req.Method != entity.PaymentMethodBBPay {
		return nil, domainerrors.ErrPaymentMethodUnavailable
	}
	if err := g.ValidateIdentifier(req.Identifier); err != nil {
		return nil, err
	}
	if req.Amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	g.wait()

	if req.PIN != "" && !g.hasher.Check(req.PIN, g.pinHash) {
		g.logger.WarnContext(ctx, "BBPAY charge declined", slog.String("identifier", req.Identifier))

		return nil, domainerrors.ErrIncorrectCredential
	}

	txID, err := newTransactionID(g.now())
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	result := &service.ChargeResult{
		TransactionID: txID,
		Method:        entity.PaymentMethodBBPay,
		Identifier:    req.Identifier,
		Amount:        req.Amount,
		Quantity:      quantity,
		TotalAmount:   pricing.LineTotal(req.Amount, quantity),
		Currency:      currency,
		Timestamp:     g.now().UTC(),
	}

	g.logger.InfoContext(ctx, "BBPAY charge settled",
		slog.String("transactionId", result.TransactionID),
		slog.Float64("totalAmount", result.TotalAmount),
	)

	return result, nil
}

// wait simulates processing time. It always runs to completion, even when the
// caller's context is cancelled.
func (g *gateway) wait() {
	if g.latency <= 0 {
		return
	}

	timer := time.NewTimer(g.latency)
	defer timer.Stop()
	<-timer.C
}

func newTransactionID(now time.Time) (string, error) {
	suffix, err := util.RandomCode(transactionSuffixLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("BBPAY_%d_%s", now.UnixMilli(), suffix), nil
}
