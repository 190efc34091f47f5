package impl

import (
	"context"
	"testing"
	"time"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/pricing"
	"expo/internal/domain/service"
	"expo/internal/errors"
	mockRepo "expo/internal/mocks/repository"
	mockSvc "expo/internal/mocks/service"
	mockUC "expo/internal/mocks/usecase"
	"expo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	gateway     *mockSvc.MockPaymentGateway
	productRepo *mockRepo.MockProductRepository
	ledger      *mockUC.MockLedgerUsecase
}

func newMockBBPayGateway(t *testing.T) *mockSvc.MockPaymentGateway {
	t.Helper()

	gateway := mockSvc.NewMockPaymentGateway(t)
	gateway.EXPECT().Method().Return(entity.PaymentMethodBBPay).Maybe()
	gateway.EXPECT().ValidateIdentifier(mock.Anything).RunAndReturn(entity.ValidateBBPayID).Maybe()

	return gateway
}

// settle answers a charge the way the bundled gateway does.
func settle(_ context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	return &service.ChargeResult{
		TransactionID: "BBPAY_1736934600000_ABC123",
		Method:        req.Method,
		Identifier:    req.Identifier,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		TotalAmount:   pricing.LineTotal(req.Amount, req.Quantity),
		Currency:      entity.DefaultCurrency,
		Timestamp:     fixedNow,
	}, nil
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	t.Helper()

	gateway := newMockBBPayGateway(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	ledger := mockUC.NewMockLedgerUsecase(t)

	svc, err := NewPaymentService(PaymentServiceParams{
		Gateways:    []service.PaymentGateway{gateway},
		ProductRepo: productRepo,
		Ledger:      ledger,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)

	return paymentServiceFixtures{
		service:     svc,
		gateway:     gateway,
		productRepo: productRepo,
		ledger:      ledger,
	}
}

func TestNewPaymentService_RequiresBBPayGateway(t *testing.T) {
	_, err := NewPaymentService(PaymentServiceParams{Logger: newDiscardLogger()})
	assert.Error(t, err)
}

func TestPaymentService_ProcessPayment(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().Charge(ctx, mock.AnythingOfType("service.ChargeRequest")).RunAndReturn(settle)
	fx.productRepo.EXPECT().GetProduct(mock.Anything, "prod_1").Return(&entity.Product{
		ID:            "prod_1",
		ProductNumber: "PROD12345678",
		Name:          "Solar Lamp",
		Owner:         "Meera",
		Category:      entity.CategoryHomeGarden,
	}, nil)

	var recorded *entity.Sale
	fx.ledger.EXPECT().
		CreateSale(mock.Anything, mock.AnythingOfType("*entity.Sale")).
		RunAndReturn(func(_ context.Context, sale *entity.Sale) (*entity.Sale, error) {
			sale.ID = "sale_1"
			recorded = sale

			return sale, nil
		})

	outcome, err := fx.service.ProcessPayment(ctx, &usecase.PaymentRequest{
		ProductID: "prod_1",
		Amount:    299,
		Quantity:  3,
		BBPayID:   "BBPAY123456789",
		Customer:  entity.BuyerInfo{Name: "Ravi", Email: "ravi@example.com"},
	})
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, 897.0, outcome.TotalAmount)
	assert.Equal(t, "sale_1", outcome.SaleID)
	assert.Equal(t, "BBPAY_1736934600000_ABC123", outcome.TransactionID)
	assert.Equal(t, "BBPAY payment processed successfully!", outcome.Message)

	require.NotNil(t, recorded)
	assert.Same(t, recorded, outcome.SaleRecord)
	assert.Equal(t, 3, recorded.Quantity)
	assert.Equal(t, 299.0, recorded.Price)
	assert.Equal(t, 897.0, recorded.Total)
	assert.Equal(t, entity.PaymentMethodBBPay, recorded.PaymentMethod)
	assert.Equal(t, "BBPAY123456789", recorded.PaymentIdentifier)
	assert.Equal(t, "Meera", recorded.ProductOwner)
	assert.Equal(t, "Home & Garden", recorded.ProductCategory)
	assert.Equal(t, "Ravi", recorded.BuyerName)
	assert.Equal(t, fixedNow, recorded.PurchaseDate)
}

func TestPaymentService_ProcessPayment_UnknownProductStillRecords(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().Charge(ctx, mock.Anything).RunAndReturn(settle)
	fx.productRepo.EXPECT().GetProduct(mock.Anything, "prod_gone").Return(nil, domainerrors.ErrProductNotFound)
	fx.ledger.EXPECT().CreateSale(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, sale *entity.Sale) (*entity.Sale, error) { return sale, nil },
	)

	outcome, err := fx.service.ProcessPayment(ctx, &usecase.PaymentRequest{
		ProductID: "prod_gone",
		Amount:    10,
		BBPayID:   "BBPAY123456789",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.SaleRecord.Quantity)
	assert.Equal(t, 10.0, outcome.TotalAmount)
	assert.Empty(t, outcome.SaleRecord.ProductOwner)
}

func TestPaymentService_ProcessPayment_RejectedWritesNothing(t *testing.T) {
	tests := []struct {
		name       string
		req        *usecase.PaymentRequest
		wantErr    error
		wantDetail string
	}{
		{
			name:       "missing fields",
			req:        &usecase.PaymentRequest{Amount: 10},
			wantErr:    domainerrors.ErrValidationFailed,
			wantDetail: "Missing required fields: productId, bbpayId",
		},
		{
			name:       "negative amount",
			req:        &usecase.PaymentRequest{ProductID: "p1", Amount: -5, BBPayID: "BBPAY123456789"},
			wantErr:    domainerrors.ErrValidationFailed,
			wantDetail: "Invalid amount provided",
		},
		{
			name:       "negative quantity",
			req:        &usecase.PaymentRequest{ProductID: "p1", Amount: 5, Quantity: -1, BBPayID: "BBPAY123456789"},
			wantErr:    domainerrors.ErrValidationFailed,
			wantDetail: "Invalid quantity provided",
		},
		{
			name:    "malformed identifier",
			req:     &usecase.PaymentRequest{ProductID: "p1", Amount: 5, BBPayID: "UPI123"},
			wantErr: domainerrors.ErrInvalidIdentifierFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)

			outcome, err := fx.service.ProcessPayment(context.Background(), tt.req)
			assert.Nil(t, outcome)
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.wantDetail != "" {
				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantDetail, appErr.Details())
			}

			fx.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
			fx.ledger.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_ProcessPayment_ChargeFailureWritesNothing(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	fx.gateway.EXPECT().Charge(ctx, mock.Anything).Return(nil, context.DeadlineExceeded)

	_, err := fx.service.ProcessPayment(ctx, &usecase.PaymentRequest{ProductID: "p1", Amount: 5, BBPayID: "BBPAY123456789"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	fx.ledger.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
}
