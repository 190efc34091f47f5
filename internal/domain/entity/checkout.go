package entity

import (
	"sync"
	"time"

	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/pricing"

	"github.com/google/uuid"
)

// CheckoutStep is the user-facing position in the checkout flow.
type CheckoutStep string

const (
	StepCart          CheckoutStep = "cart"
	StepPaymentMethod CheckoutStep = "payment_method"
	StepMethodDetails CheckoutStep = "method_details"
	StepProcessing    CheckoutStep = "processing"
	StepSuccess       CheckoutStep = "success"
	StepFailure       CheckoutStep = "failure"
)

// Receipt is returned to the buyer after a successful payment.
type Receipt struct {
	TransactionID  string         `json:"transactionId"`
	Method         PaymentMethod  `json:"paymentMethod"`
	Identifier     string         `json:"paymentIdentifier"`
	Currency       string         `json:"currency"`
	Subtotal       float64        `json:"subtotal"`
	DiscountAmount float64        `json:"discountAmount"`
	Total          float64        `json:"total"`
	PromoCode      string         `json:"promoCode,omitempty"`
	Items          []CartLineItem `json:"items"`
	SaleIDs        []string       `json:"saleIds"`
	Buyer          BuyerInfo      `json:"buyer"`
	PaidAt         time.Time      `json:"paidAt"`
}

// Settlement is a charge the gateway accepted whose sales are not all recorded
// yet. The sales keep their IDs so a retry overwrites instead of duplicating.
type Settlement struct {
	Receipt *Receipt
	Sales   []*Sale
}

// CheckoutSession is one shopper's cart and payment progress.
// Callers hold Lock while reading or mutating a session.
type CheckoutSession struct {
	mu sync.Mutex

	ID        string          `json:"id"`
	Cart      *Cart           `json:"cart"`
	Step      CheckoutStep    `json:"step"`
	Attempt   *PaymentAttempt `json:"attempt,omitempty"`
	Receipt   *Receipt        `json:"receipt,omitempty"`
	LastError string          `json:"lastError,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	// Settlement is set while a taken payment still has unrecorded sales.
	Settlement *Settlement `json:"-"`
}

var errSettlementPending = domainerrors.ErrCheckoutState.WithDetails("payment already taken, pay again to finish recording the sale")

// NewCheckoutSession returns a session positioned at the cart step.
func NewCheckoutSession(now time.Time) *CheckoutSession {
	return &CheckoutSession{
		ID:        uuid.NewString(),
		Cart:      NewCart(),
		Step:      StepCart,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Lock acquires the session mutex.
func (s *CheckoutSession) Lock() { s.mu.Lock() }

// Unlock releases the session mutex.
func (s *CheckoutSession) Unlock() { s.mu.Unlock() }

// Touch records a modification.
func (s *CheckoutSession) Touch(now time.Time) {
	s.UpdatedAt = now
}

// EnsureCartEditable allows cart edits in the cart step. A completed
// checkout is reset so that the shopper starts a fresh attempt.
func (s *CheckoutSession) EnsureCartEditable() error {
	switch s.Step {
	case StepCart:
		return nil
	case StepSuccess:
		s.reset()

		return nil
	case StepProcessing:
		return domainerrors.ErrCheckoutBusy
	default:
		return domainerrors.ErrCheckoutState.WithDetails("go back to the cart to change it")
	}
}

// Start leaves the cart step. An empty cart cannot be checked out.
func (s *CheckoutSession) Start() error {
	if err := s.EnsureCartEditable(); err != nil {
		return err
	}
	if s.Cart.IsEmpty() {
		return domainerrors.ErrEmptyCart
	}

	s.Attempt = NewPaymentAttempt()
	s.LastError = ""
	s.Step = StepPaymentMethod

	return nil
}

// ChooseMethod selects a payment method. Methods without a gateway are
// reported unavailable and the session stays on method selection.
func (s *CheckoutSession) ChooseMethod(method PaymentMethod, available bool) error {
	switch s.Step {
	case StepPaymentMethod, StepMethodDetails, StepFailure:
	case StepProcessing:
		return domainerrors.ErrCheckoutBusy
	default:
		return domainerrors.ErrCheckoutState.WithDetails("start checkout before choosing a payment method")
	}
	if s.Settlement != nil {
		return errSettlementPending
	}

	if !method.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + string(method))
	}

	if !available {
		s.Attempt = NewPaymentAttempt()
		s.Step = StepPaymentMethod
		s.LastError = domainerrors.ErrPaymentMethodUnavailable.Message()

		return domainerrors.ErrPaymentMethodUnavailable
	}

	if err := s.Attempt.SelectMethod(method); err != nil {
		return err
	}

	s.LastError = ""
	s.Step = StepMethodDetails

	return nil
}

// EnterDetails records the payer identifier for the selected method.
func (s *CheckoutSession) EnterDetails(identifier string, buyer BuyerInfo) error {
	switch s.Step {
	case StepMethodDetails, StepFailure:
	case StepProcessing:
		return domainerrors.ErrCheckoutBusy
	default:
		return domainerrors.ErrCheckoutState.WithDetails("choose a payment method first")
	}
	if s.Settlement != nil {
		return errSettlementPending
	}

	if err := s.Attempt.EnterDetails(identifier, buyer); err != nil {
		s.LastError = err.Error()

		return err
	}

	s.LastError = ""
	s.Step = StepMethodDetails

	return nil
}

// BeginPayment enters the processing step and returns the amount to charge.
// While processing, every other transition on the session is rejected.
func (s *CheckoutSession) BeginPayment(pin string) (pricing.Quote, error) {
	switch s.Step {
	case StepMethodDetails, StepFailure:
	case StepProcessing:
		return pricing.Quote{}, domainerrors.ErrCheckoutBusy
	default:
		return pricing.Quote{}, domainerrors.ErrCheckoutState.WithDetails("enter payment details first")
	}

	if s.Cart.IsEmpty() {
		return pricing.Quote{}, domainerrors.ErrEmptyCart
	}

	if s.Attempt.State == AttemptFailed {
		if err := s.Attempt.Retry(); err != nil {
			return pricing.Quote{}, err
		}
	}
	if err := s.Attempt.BeginProcessing(pin); err != nil {
		return pricing.Quote{}, err
	}

	s.LastError = ""
	s.Step = StepProcessing

	return s.Cart.Quote(), nil
}

// CompletePayment settles the attempt, clears the cart and stores the receipt.
func (s *CheckoutSession) CompletePayment(receipt *Receipt) error {
	if err := s.Attempt.Succeed(receipt.TransactionID); err != nil {
		return err
	}

	s.Cart.Clear()
	s.Settlement = nil
	s.Receipt = receipt
	s.LastError = ""
	s.Step = StepSuccess

	return nil
}

// FailPayment records the failure; the shopper may retry from the details step.
func (s *CheckoutSession) FailPayment(reason string) error {
	if err := s.Attempt.Fail(reason); err != nil {
		return err
	}

	s.LastError = reason
	s.Step = StepFailure

	return nil
}

// FailRecording records a failure after the charge went through. The session
// keeps the settlement and only Pay can move it on, without charging again.
func (s *CheckoutSession) FailRecording(reason string, settlement *Settlement) error {
	if err := s.FailPayment(reason); err != nil {
		return err
	}
	s.Settlement = settlement

	return nil
}

// GoBack returns to the cart or to method selection, discarding the PIN
// and entered identifier.
func (s *CheckoutSession) GoBack(to CheckoutStep) error {
	switch s.Step {
	case StepProcessing:
		return domainerrors.ErrCheckoutBusy
	case StepSuccess:
		return domainerrors.ErrCheckoutState.WithDetails("checkout already completed")
	}
	if s.Settlement != nil {
		return errSettlementPending
	}

	switch to {
	case StepCart:
		s.Attempt = nil
		s.Step = StepCart
	case StepPaymentMethod:
		if s.Step == StepCart {
			return domainerrors.ErrCheckoutState.WithDetails("start checkout first")
		}
		s.Attempt = NewPaymentAttempt()
		s.Step = StepPaymentMethod
	default:
		return domainerrors.ErrValidationFailed.WithDetails("can only go back to cart or payment_method")
	}

	s.LastError = ""

	return nil
}

func (s *CheckoutSession) reset() {
	s.Attempt = nil
	s.Receipt = nil
	s.LastError = ""
	s.Step = StepCart
}

// CheckoutView is a point-in-time copy of a session with its quote.
type CheckoutView struct {
	ID        string          `json:"id"`
	Step      CheckoutStep    `json:"step"`
	Cart      *Cart           `json:"cart"`
	ItemCount int             `json:"itemCount"`
	Quote     pricing.Quote   `json:"quote"`
	Attempt   *PaymentAttempt `json:"attempt,omitempty"`
	Receipt   *Receipt        `json:"receipt,omitempty"`
	LastError string          `json:"lastError,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// View copies the session state. The caller must hold the lock.
func (s *CheckoutSession) View() *CheckoutView {
	view := &CheckoutView{
		ID:        s.ID,
		Step:      s.Step,
		Cart:      s.Cart.Snapshot(),
		ItemCount: s.Cart.ItemCount(),
		Quote:     s.Cart.Quote(),
		Receipt:   s.Receipt,
		LastError: s.LastError,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Attempt != nil {
		attempt := *s.Attempt
		attempt.pin = ""
		view.Attempt = &attempt
	}

	return view
}
