package entity

import (
	"regexp"
	"strings"

	domainerrors "expo/internal/domain/errors"
)

// AttemptState is the state of a single mock payment attempt.
type AttemptState string

const (
	AttemptIdle           AttemptState = "idle"
	AttemptMethodSelected AttemptState = "method_selected"
	AttemptDetailsEntered AttemptState = "details_entered"
	AttemptProcessing     AttemptState = "processing"
	AttemptSucceeded      AttemptState = "succeeded"
	AttemptFailed         AttemptState = "failed"
)

var bbpayIDPattern = regexp.MustCompile(`^BBPAY\d{9}$`)

// ValidateBBPayID checks the BBPAY account identifier format.
func ValidateBBPayID(id string) error {
	if !bbpayIDPattern.MatchString(id) {
		return domainerrors.ErrInvalidIdentifierFormat
	}

	return nil
}

// ValidatePaymentIdentifier applies the method-specific identifier rule.
func ValidatePaymentIdentifier(method PaymentMethod, identifier string) error {
	switch method {
	case PaymentMethodBBPay:
		return ValidateBBPayID(identifier)
	default:
		if strings.TrimSpace(identifier) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("payment identifier is required")
		}

		return nil
	}
}

// BuyerInfo is the contact data captured with payment details.
type BuyerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentAttempt tracks one pass through the mock payment flow.
// Succeeded is terminal; a failure drops the PIN and allows a retry.
type PaymentAttempt struct {
	State         AttemptState  `json:"state"`
	Method        PaymentMethod `json:"method,omitempty"`
	Identifier    string        `json:"identifier,omitempty"`
	Buyer         BuyerInfo     `json:"buyer"`
	TransactionID string        `json:"transactionId,omitempty"`
	FailureReason string        `json:"failureReason,omitempty"`

	pin string
}

// NewPaymentAttempt returns an attempt in the idle state.
func NewPaymentAttempt() *PaymentAttempt {
	return &PaymentAttempt{State: AttemptIdle}
}

// PIN returns the secret captured for the current processing step.
func (a *PaymentAttempt) PIN() string {
	return a.pin
}

// SelectMethod chooses the payment method and discards any entered details.
func (a *PaymentAttempt) SelectMethod(method PaymentMethod) error {
	switch a.State {
	case AttemptIdle, AttemptMethodSelected, AttemptDetailsEntered, AttemptFailed:
	default:
		return domainerrors.ErrCheckoutState.WithDetails("cannot select a payment method while " + string(a.State))
	}

	if !method.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + string(method))
	}

	a.Method = method
	a.Identifier = ""
	a.FailureReason = ""
	a.pin = ""
	a.State = AttemptMethodSelected

	return nil
}

// EnterDetails records the payer identifier and contact data.
// On an invalid identifier the state is left untouched.
func (a *PaymentAttempt) EnterDetails(identifier string, buyer BuyerInfo) error {
	switch a.State {
	case AttemptMethodSelected, AttemptDetailsEntered, AttemptFailed:
	default:
		return domainerrors.ErrCheckoutState.WithDetails("cannot enter payment details while " + string(a.State))
	}

	identifier = strings.TrimSpace(identifier)
	if err := ValidatePaymentIdentifier(a.Method, identifier); err != nil {
		return err
	}

	a.Identifier = identifier
	a.Buyer = buyer
	a.pin = ""
	a.State = AttemptDetailsEntered

	return nil
}

// BeginProcessing moves to processing once a PIN is supplied.
func (a *PaymentAttempt) BeginProcessing(pin string) error {
	switch a.State {
	case AttemptDetailsEntered:
	default:
		return domainerrors.ErrCheckoutState.WithDetails("cannot start processing while " + string(a.State))
	}

	if strings.TrimSpace(pin) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("PIN is required")
	}

	a.pin = pin
	a.FailureReason = ""
	a.State = AttemptProcessing

	return nil
}

// Succeed marks the attempt settled. It can only happen once.
func (a *PaymentAttempt) Succeed(transactionID string) error {
	if a.State != AttemptProcessing {
		return domainerrors.ErrCheckoutState.WithDetails("cannot succeed while " + string(a.State))
	}

	a.TransactionID = transactionID
	a.pin = ""
	a.State = AttemptSucceeded

	return nil
}

// Fail records the failure reason and clears the PIN for a retry.
func (a *PaymentAttempt) Fail(reason string) error {
	if a.State != AttemptProcessing {
		return domainerrors.ErrCheckoutState.WithDetails("cannot fail while " + string(a.State))
	}

	a.FailureReason = reason
	a.pin = ""
	a.State = AttemptFailed

	return nil
}

// Retry returns a failed attempt to details_entered, keeping the identifier.
func (a *PaymentAttempt) Retry() error {
	if a.State != AttemptFailed {
		return domainerrors.ErrCheckoutState.WithDetails("nothing to retry while " + string(a.State))
	}

	a.State = AttemptDetailsEntered

	return nil
}

// IsTerminal reports whether the attempt has settled.
func (a *PaymentAttempt) IsTerminal() bool {
	return a.State == AttemptSucceeded
}
