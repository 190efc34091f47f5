package usecase

import (
	"context"
	"time"

	"expo/internal/domain/entity"
)

// CheckoutToken is a signed handle to a new checkout session
type CheckoutToken struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expiresAt"`
	Checkout  *entity.CheckoutView `json:"checkout"`
}

// AddItemInput adds units of a product to the cart
type AddItemInput struct {
	ProductID     string
	Quantity      int
	SelectedSize  string
	SelectedColor string
}

// PromoResult reports whether a promo code was accepted
type PromoResult struct {
	Applied  bool                 `json:"applied"`
	Checkout *entity.CheckoutView `json:"checkout"`
}

// CheckoutUsecase defines the cart and multi-step checkout use cases.
// Every call other than OpenSession is scoped to one session ID.
type CheckoutUsecase interface {
	// OpenSession creates an empty session and signs a token for it
	OpenSession(ctx context.Context) (*CheckoutToken, error)

	// ResolveSession validates a token and returns its session ID
	ResolveSession(ctx context.Context, token string) (string, error)

	// GetCheckout returns the session state and its quote
	GetCheckout(ctx context.Context, sessionID string) (*entity.CheckoutView, error)

	// AddItem adds a product to the cart
	AddItem(ctx context.Context, sessionID string, input *AddItemInput) (*entity.CheckoutView, error)

	// UpdateQuantity sets a line quantity; zero or below removes it
	UpdateQuantity(ctx context.Context, sessionID, productID string, variant entity.Variant, quantity int) (*entity.CheckoutView, error)

	// RemoveItem drops a cart line
	RemoveItem(ctx context.Context, sessionID, productID string, variant entity.Variant) (*entity.CheckoutView, error)

	// ClearCart empties the cart and unsets the promo code
	ClearCart(ctx context.Context, sessionID string) (*entity.CheckoutView, error)

	// ApplyPromoCode replaces the applied promo code
	ApplyPromoCode(ctx context.Context, sessionID, code string) (*PromoResult, error)

	// StartCheckout leaves the cart step
	StartCheckout(ctx context.Context, sessionID string) (*entity.CheckoutView, error)

	// SelectPaymentMethod chooses how to pay
	SelectPaymentMethod(ctx context.Context, sessionID string, method entity.PaymentMethod) (*entity.CheckoutView, error)

	// EnterPaymentDetails records the payer identifier and contact data
	EnterPaymentDetails(ctx context.Context, sessionID, identifier string, buyer entity.BuyerInfo) (*entity.CheckoutView, error)

	// Pay charges the cart total and records one sale per line
	Pay(ctx context.Context, sessionID, pin string) (*entity.CheckoutView, error)

	// GoBack returns to the cart or to method selection
	GoBack(ctx context.Context, sessionID string, to entity.CheckoutStep) (*entity.CheckoutView, error)

	// PaymentQR renders a PNG QR code for the pending payment
	PaymentQR(ctx context.Context, sessionID string) ([]byte, error)
}
