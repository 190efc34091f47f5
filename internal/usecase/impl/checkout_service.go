package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expo/config"
	deliverycontext "expo/internal/delivery/context"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/pricing"
	"expo/internal/domain/repository"
	"expo/internal/domain/service"
	"expo/internal/errors"
	"expo/internal/usecase"

	"go.uber.org/fx"
)

const (
	incorrectPINMessage   = "Incorrect PIN. Please try again."
	paymentFailedMessage  = "Payment failed. Please try again."
	saleNotRecordedReason = "Payment was taken but the sale could not be recorded."
)

type checkoutService struct {
	sessions    repository.CheckoutSessionRepository
	productRepo repository.ProductRepository
	ledger      usecase.LedgerUsecase
	gateways    map[entity.PaymentMethod]service.PaymentGateway
	tokens      service.SessionTokenService
	qrcode      service.QRCodeService
	promos      *pricing.PromoTable
	currency    string
	logger      *slog.Logger
	now         func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Sessions    repository.CheckoutSessionRepository
	ProductRepo repository.ProductRepository
	Ledger      usecase.LedgerUsecase
	Gateways    []service.PaymentGateway `group:"payment_gateways"`
	Tokens      service.SessionTokenService
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService creates the cart and checkout orchestrator
func NewCheckoutService(params CheckoutServiceParams) (usecase.CheckoutUsecase, error) {
	promos := pricing.DefaultPromoTable()
	if params.Config.Promo != nil && len(params.Config.Promo.Codes) > 0 {
		table, err := pricing.NewPromoTable(params.Config.Promo.Codes)
		if err != nil {
			return nil, errors.Wrap(err, "invalid promo code table")
		}
		promos = table
	}

	currency := entity.DefaultCurrency
	if params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &checkoutService{
		sessions:    params.Sessions,
		productRepo: params.ProductRepo,
		ledger:      params.Ledger,
		gateways:    gatewayIndex(params.Gateways),
		tokens:      params.Tokens,
		qrcode:      params.QRCode,
		promos:      promos,
		currency:    currency,
		logger:      params.Logger,
		now:         time.Now,
	}, nil
}

// OpenSession creates an empty session and signs a token for it
func (s *checkoutService) OpenSession(ctx context.Context) (*usecase.CheckoutToken, error) {
	session := entity.NewCheckoutSession(s.now())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.IssueSessionToken(session.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	session.Lock()
	view := session.View()
	session.Unlock()

	return &usecase.CheckoutToken{Token: token, ExpiresAt: expiresAt, Checkout: view}, nil
}

// ResolveSession validates a token and returns its session ID
func (s *checkoutService) ResolveSession(_ context.Context, token string) (string, error) {
	claims, err := s.tokens.ValidateSessionToken(token)
	if err != nil || claims.SessionID == "" {
		return "", domainerrors.ErrSessionNotFound
	}

	return claims.SessionID, nil
}

// GetCheckout returns the session state and its quote
func (s *checkoutService) GetCheckout(ctx context.Context, sessionID string) (*entity.CheckoutView, error) {
	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	return session.View(), nil
}

// AddItem adds a product to the cart using its current name and price
func (s *checkoutService) AddItem(ctx context.Context, sessionID string, input *usecase.AddItemInput) (*entity.CheckoutView, error) {
	if input == nil || strings.TrimSpace(input.ProductID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productId is required")
	}

	product, err := s.productRepo.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Status == entity.ProductStatusInactive {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is not available")
	}

	item := entity.CartLineItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		Image:         product.ImageURL,
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
	}

	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		if err := session.EnsureCartEditable(); err != nil {
			return err
		}
		session.Cart.AddItem(item, input.Quantity)

		return nil
	})
}

// UpdateQuantity sets a line quantity; zero or below removes it
func (s *checkoutService) UpdateQuantity(ctx context.Context, sessionID, productID string, variant entity.Variant, quantity int) (*entity.CheckoutView, error) {
	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		if err := session.EnsureCartEditable(); err != nil {
			return err
		}
		session.Cart.UpdateQuantity(productID, variant, quantity)

		return nil
	})
}

// RemoveItem drops a cart line
func (s *checkoutService) RemoveItem(ctx context.Context, sessionID, productID string, variant entity.Variant) (*entity.CheckoutView, error) {
	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		if err := session.EnsureCartEditable(); err != nil {
			return err
		}
		session.Cart.RemoveItem(productID, variant)

		return nil
	})
}

// ClearCart empties the cart and unsets the promo code
func (s *checkoutService) ClearCart(ctx context.Context, sessionID string) (*entity.CheckoutView, error) {
	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		if err := session.EnsureCartEditable(); err != nil {
			return err
		}
		session.Cart.Clear()

		return nil
	})
}

// ApplyPromoCode replaces the applied promo; an unknown code clears it
func (s *checkoutService) ApplyPromoCode(ctx context.Context, sessionID, code string) (*usecase.PromoResult, error) {
	var applied bool
	view, err := s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		if err := session.EnsureCartEditable(); err != nil {
			return err
		}
		_, applied = session.Cart.ApplyPromoCode(s.promos, code)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.PromoResult{Applied: applied, Checkout: view}, nil
}

// StartCheckout leaves the cart step
func (s *checkoutService) StartCheckout(ctx context.Context, sessionID string) (*entity.CheckoutView, error) {
	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		return session.Start()
	})
}

// SelectPaymentMethod chooses how to pay. Methods without a gateway are unavailable.
func (s *checkoutService) SelectPaymentMethod(ctx context.Context, sessionID string, method entity.PaymentMethod) (*entity.CheckoutView, error) {
	_, available := s.gateways[method]

	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		return session.ChooseMethod(method, available)
	})
}

// EnterPaymentDetails records the payer identifier and contact data
func (s *checkoutService) EnterPaymentDetails(ctx context.Context, sessionID, identifier string, buyer entity.BuyerInfo) (*entity.CheckoutView, error) {
	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		return session.EnterDetails(strings.TrimSpace(identifier), buyer)
	})
}

// GoBack returns to the cart or to method selection
func (s *checkoutService) GoBack(ctx context.Context, sessionID string, to entity.CheckoutStep) (*entity.CheckoutView, error) {
	return s.mutate(ctx, sessionID, func(session *entity.CheckoutSession) error {
		return session.GoBack(to)
	})
}

// paymentSnapshot is what Pay needs from the session once it is processing.
type paymentSnapshot struct {
	method     entity.PaymentMethod
	identifier string
	buyer      entity.BuyerInfo
	items      []entity.CartLineItem
	promo      *pricing.PromoCode
	quote      pricing.Quote
	settlement *entity.Settlement
}

// Pay charges the cart total and records one sale per cart line, all sharing
// the gateway transaction ID. The session stays in processing while the
// gateway runs, so concurrent calls on it fail with ErrCheckoutBusy.
//
// When a previous attempt was charged but its sales were not all written, Pay
// skips the gateway and writes the same sales again under the same IDs.
func (s *checkoutService) Pay(ctx context.Context, sessionID, pin string) (*entity.CheckoutView, error) {
	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	quote, err := session.BeginPayment(pin)
	if err != nil {
		session.Unlock()

		return nil, err
	}
	cart := session.Cart.Snapshot()
	snap := paymentSnapshot{
		method:     session.Attempt.Method,
		identifier: session.Attempt.Identifier,
		buyer:      session.Attempt.Buyer,
		items:      cart.Items,
		promo:      cart.Promo,
		quote:      quote,
		settlement: session.Settlement,
	}
	session.Touch(s.now())
	session.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	settlement := snap.settlement
	if settlement == nil {
		settlement, err = s.charge(ctx, snap, pin)
		if err != nil {
			reason := paymentFailedMessage
			switch {
			case errors.Is(err, domainerrors.ErrIncorrectCredential):
				reason = incorrectPINMessage
			case errors.Is(err, domainerrors.ErrPaymentMethodUnavailable):
				reason = domainerrors.ErrPaymentMethodUnavailable.Message()
			}
			logger.InfoContext(ctx, "Checkout payment failed", slog.String("sessionId", sessionID), slog.Any("error", err))

			return s.failPayment(ctx, session, reason, nil, err)
		}
	} else {
		logger.InfoContext(ctx, "Recording sales for a settled charge",
			slog.String("sessionId", sessionID),
			slog.String("transactionId", settlement.Receipt.TransactionID),
		)
	}

	// The charge has settled; recording it must not depend on the caller staying connected.
	recordCtx := context.WithoutCancel(ctx)
	if err := s.ledger.RecordSales(recordCtx, settlement.Sales); err != nil {
		logger.ErrorContext(ctx, "Checkout sales not recorded",
			slog.String("transactionId", settlement.Receipt.TransactionID),
			slog.Any("error", err),
		)

		return s.failPayment(recordCtx, session, saleNotRecordedReason, settlement, err)
	}

	receipt := settlement.Receipt
	receipt.SaleIDs = make([]string, 0, len(settlement.Sales))
	for _, sale := range settlement.Sales {
		receipt.SaleIDs = append(receipt.SaleIDs, sale.ID)
	}

	session.Lock()
	err = session.CompletePayment(receipt)
	session.Touch(s.now())
	view := session.View()
	session.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(recordCtx, session); err != nil {
		return nil, err
	}

	return view, nil
}

// charge runs the gateway and prepares the sales and receipt for the result.
func (s *checkoutService) charge(ctx context.Context, snap paymentSnapshot, pin string) (*entity.Settlement, error) {
	gateway, ok := s.gateways[snap.method]
	if !ok {
		return nil, domainerrors.ErrPaymentMethodUnavailable
	}

	result, err := gateway.Charge(ctx, service.ChargeRequest{
		Method:     snap.method,
		Identifier: snap.identifier,
		PIN:        pin,
		Amount:     snap.quote.Total,
		Quantity:   1,
		Currency:   s.currency,
	})
	if err != nil {
		return nil, err
	}

	sales := s.buildSales(context.WithoutCancel(ctx), snap, result)
	for _, sale := range sales {
		sale.ID = entity.NewSaleID()
	}

	receipt := &entity.Receipt{
		TransactionID:  result.TransactionID,
		Method:         result.Method,
		Identifier:     result.Identifier,
		Currency:       result.Currency,
		Subtotal:       snap.quote.Subtotal,
		DiscountAmount: snap.quote.DiscountAmount,
		Total:          snap.quote.Total,
		Items:          snap.items,
		Buyer:          snap.buyer,
		PaidAt:         result.Timestamp,
	}
	if snap.promo != nil {
		receipt.PromoCode = snap.promo.Code
	}

	return &entity.Settlement{Receipt: receipt, Sales: sales}, nil
}

// failPayment moves the session to failure. A non-nil settlement means the
// charge went through and is kept for the next Pay.
func (s *checkoutService) failPayment(ctx context.Context, session *entity.CheckoutSession, reason string, settlement *entity.Settlement, cause error) (*entity.CheckoutView, error) {
	session.Lock()
	var failErr error
	if settlement != nil {
		failErr = session.FailRecording(reason, settlement)
	} else {
		failErr = session.FailPayment(reason)
	}
	session.Touch(s.now())
	session.Unlock()

	if failErr != nil {
		return nil, failErr
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return nil, cause
}

// buildSales creates one sale per cart line, denormalized from the product
// record when it still exists and from the cart line otherwise.
func (s *checkoutService) buildSales(ctx context.Context, snap paymentSnapshot, result *service.ChargeResult) []*entity.Sale {
	sales := make([]*entity.Sale, 0, len(snap.items))
	for _, item := range snap.items {
		sale := &entity.Sale{
			ProductID:         item.ProductID,
			ProductName:       item.Name,
			Quantity:          item.Quantity,
			Price:             item.Price,
			Total:             pricing.LineTotal(item.Price, item.Quantity),
			Currency:          result.Currency,
			PaymentMethod:     result.Method,
			PaymentIdentifier: result.Identifier,
			TransactionID:     result.TransactionID,
			BuyerName:         snap.buyer.Name,
			BuyerEmail:        snap.buyer.Email,
			BuyerPhone:        snap.buyer.Phone,
			PurchaseDate:      result.Timestamp,
			PaymentStatus:     entity.PaymentStatusSuccess,
			Status:            entity.SaleStatusCompleted,
		}
		if snap.promo != nil {
			sale.PromoCode = snap.promo.Code
			sale.DiscountAmount = pricing.LineDiscount(item.Price, item.Quantity, snap.promo)
		}

		product, err := s.productRepo.GetProduct(ctx, item.ProductID)
		switch {
		case err == nil:
			sale.ProductNumber = product.ProductNumber
			sale.ProductName = product.Name
			sale.ProductOwner = product.Owner
			sale.ProductCategory = product.Category.String()
		case !errors.Is(err, domainerrors.ErrProductNotFound):
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Product lookup failed during checkout",
				slog.String("productId", item.ProductID),
				slog.Any("error", err),
			)
		}

		sales = append(sales, sale)
	}

	return sales
}

// PaymentQR renders a QR code for the pending payment
func (s *checkoutService) PaymentQR(ctx context.Context, sessionID string) ([]byte, error) {
	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	if session.Step != entity.StepMethodDetails && session.Step != entity.StepFailure {
		session.Unlock()

		return nil, domainerrors.ErrCheckoutState.WithDetails("choose a payment method first")
	}
	payload := service.PaymentQRPayload{
		SessionID: session.ID,
		Method:    string(session.Attempt.Method),
		Amount:    session.Cart.Quote().Total,
		Currency:  s.currency,
	}
	session.Unlock()

	png, err := s.qrcode.GeneratePaymentQR(payload)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

// mutate runs fn under the session lock and saves the session afterwards.
// The session is saved even when fn fails, since a failed transition may
// still record an error message on it.
func (s *checkoutService) mutate(ctx context.Context, sessionID string, fn func(*entity.CheckoutSession) error) (*entity.CheckoutView, error) {
	session, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	fnErr := fn(session)
	session.Touch(s.now())
	view := session.View()
	session.Unlock()

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	if fnErr != nil {
		return nil, fnErr
	}

	return view, nil
}
