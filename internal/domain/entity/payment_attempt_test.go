package entity

import (
	"testing"

	domainerrors "expo/internal/domain/errors"
	"expo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBBPayID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{id: "BBPAY123456789", valid: true},
		{id: "BBPAY000000000", valid: true},
		{id: "BBPAY12345678", valid: false},
		{id: "BBPAY1234567890", valid: false},
		{id: "bbpay123456789", valid: false},
		{id: "UPI123456789", valid: false},
		{id: "BBPAY12345678X", valid: false},
		{id: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateBBPayID(tt.id)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifierFormat))
			}
		})
	}
}

func readyAttempt(t *testing.T) *PaymentAttempt {
	t.Helper()

	attempt := NewPaymentAttempt()
	require.NoError(t, attempt.SelectMethod(PaymentMethodBBPay))
	require.NoError(t, attempt.EnterDetails("BBPAY123456789", BuyerInfo{Name: "Asha"}))

	return attempt
}

func TestPaymentAttempt_HappyPath(t *testing.T) {
	attempt := readyAttempt(t)
	assert.Equal(t, AttemptDetailsEntered, attempt.State)

	require.NoError(t, attempt.BeginProcessing("1908"))
	assert.Equal(t, AttemptProcessing, attempt.State)
	assert.Equal(t, "1908", attempt.PIN())

	require.NoError(t, attempt.Succeed("BBPAY_1_ABC123"))
	assert.Equal(t, AttemptSucceeded, attempt.State)
	assert.True(t, attempt.IsTerminal())
	assert.Empty(t, attempt.PIN())
}

func TestPaymentAttempt_InvalidIdentifierKeepsState(t *testing.T) {
	attempt := NewPaymentAttempt()
	require.NoError(t, attempt.SelectMethod(PaymentMethodBBPay))

	err := attempt.EnterDetails("BBPAY12", BuyerInfo{})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifierFormat))
	assert.Equal(t, AttemptMethodSelected, attempt.State)
	assert.Empty(t, attempt.Identifier)
}

func TestPaymentAttempt_RequiresPIN(t *testing.T) {
	attempt := readyAttempt(t)

	err := attempt.BeginProcessing("  ")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, AttemptDetailsEntered, attempt.State)
}

func TestPaymentAttempt_FailThenRetry(t *testing.T) {
	attempt := readyAttempt(t)
	require.NoError(t, attempt.BeginProcessing("0000"))

	require.NoError(t, attempt.Fail("Incorrect PIN"))
	assert.Equal(t, AttemptFailed, attempt.State)
	assert.Empty(t, attempt.PIN())
	assert.Equal(t, "Incorrect PIN", attempt.FailureReason)
	assert.True(t, errors.Is(attempt.BeginProcessing("1908"), domainerrors.ErrCheckoutState))

	require.NoError(t, attempt.Retry())
	assert.Equal(t, AttemptDetailsEntered, attempt.State)
	assert.Equal(t, "BBPAY123456789", attempt.Identifier)

	require.NoError(t, attempt.BeginProcessing("1908"))
	assert.Empty(t, attempt.FailureReason)
}

func TestPaymentAttempt_SucceededIsTerminal(t *testing.T) {
	attempt := readyAttempt(t)
	require.NoError(t, attempt.BeginProcessing("1908"))
	require.NoError(t, attempt.Succeed("tx"))

	assert.True(t, errors.Is(attempt.Succeed("tx2"), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.Fail("late"), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.BeginProcessing("1908"), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.SelectMethod(PaymentMethodBBPay), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.EnterDetails("BBPAY123456789", BuyerInfo{}), domainerrors.ErrCheckoutState))
	assert.Equal(t, "tx", attempt.TransactionID)
}

func TestPaymentAttempt_OutOfOrder(t *testing.T) {
	attempt := NewPaymentAttempt()

	assert.True(t, errors.Is(attempt.EnterDetails("BBPAY123456789", BuyerInfo{}), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.BeginProcessing("1908"), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.Succeed("tx"), domainerrors.ErrCheckoutState))
	assert.True(t, errors.Is(attempt.Retry(), domainerrors.ErrCheckoutState))
}

func TestPaymentAttempt_SelectMethodResetsDetails(t *testing.T) {
	attempt := readyAttempt(t)

	require.NoError(t, attempt.SelectMethod(PaymentMethodCard))

	assert.Equal(t, AttemptMethodSelected, attempt.State)
	assert.Empty(t, attempt.Identifier)
}
