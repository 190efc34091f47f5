package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "expo/internal/delivery/context"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"
	"expo/internal/domain/service"
	"expo/internal/errors"
	"expo/internal/usecase"

	"go.uber.org/fx"
)

const paymentSucceededMessage = "BBPAY payment processed successfully!"

type paymentService struct {
	gateway     service.PaymentGateway
	productRepo repository.ProductRepository
	ledger      usecase.LedgerUsecase
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateways    []service.PaymentGateway `group:"payment_gateways"`
	ProductRepo repository.ProductRepository
	Ledger      usecase.LedgerUsecase
	Logger      *slog.Logger
}

// NewPaymentService creates the direct BBPAY payment service
func NewPaymentService(params PaymentServiceParams) (usecase.PaymentUsecase, error) {
	gateway, ok := gatewayIndex(params.Gateways)[entity.PaymentMethodBBPay]
	if !ok {
		return nil, errors.New("no BBPAY payment gateway registered")
	}

	return &paymentService{
		gateway:     gateway,
		productRepo: params.ProductRepo,
		ledger:      params.Ledger,
		logger:      params.Logger,
	}, nil
}

// ProcessPayment validates the request, charges the gateway without a PIN and
// writes exactly one sale. Nothing is written when validation or the charge fails.
func (s *paymentService) ProcessPayment(ctx context.Context, req *usecase.PaymentRequest) (*usecase.PaymentOutcome, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}
	if err := s.gateway.ValidateIdentifier(req.BBPayID); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	result, err := s.gateway.Charge(ctx, service.ChargeRequest{
		Method:     entity.PaymentMethodBBPay,
		Identifier: req.BBPayID,
		Amount:     req.Amount,
		Quantity:   quantity,
		Currency:   req.Currency,
	})
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		ProductID:         req.ProductID,
		ProductNumber:     req.ProductNumber,
		ProductName:       req.ProductName,
		ProductOwner:      req.ProductOwner,
		ProductCategory:   req.ProductCategory,
		Quantity:          result.Quantity,
		Price:             result.Amount,
		Total:             result.TotalAmount,
		Currency:          result.Currency,
		PaymentMethod:     entity.PaymentMethodBBPay,
		PaymentIdentifier: result.Identifier,
		TransactionID:     result.TransactionID,
		BuyerName:         req.Customer.Name,
		BuyerEmail:        req.Customer.Email,
		BuyerPhone:        req.Customer.Phone,
		PurchaseDate:      result.Timestamp,
		PaymentStatus:     entity.PaymentStatusSuccess,
		Status:            entity.SaleStatusCompleted,
	}
	s.denormalizeProduct(ctx, sale)

	// The charge has settled; recording it must not depend on the caller staying connected.
	recorded, err := s.ledger.CreateSale(context.WithoutCancel(ctx), sale)
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentOutcome{
		Success:       true,
		TransactionID: result.TransactionID,
		SaleID:        recorded.ID,
		TotalAmount:   result.TotalAmount,
		SaleRecord:    recorded,
		Message:       paymentSucceededMessage,
	}, nil
}

func validatePaymentRequest(req *usecase.PaymentRequest) error {
	if req == nil {
		return domainerrors.ErrValidationFailed.WithDetails("payment request is required")
	}

	missing := make([]string, 0, 3)
	if strings.TrimSpace(req.ProductID) == "" {
		missing = append(missing, "productId")
	}
	if req.Amount == 0 {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(req.BBPayID) == "" {
		missing = append(missing, "bbpayId")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Missing required fields: " + strings.Join(missing, ", "))
	}

	if req.Amount < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid amount provided")
	}
	if req.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid quantity provided")
	}

	return nil
}

// denormalizeProduct fills product fields the request left blank. A missing
// product is tolerated; the sale keeps whatever the request carried.
func (s *paymentService) denormalizeProduct(ctx context.Context, sale *entity.Sale) {
	if sale.ProductName != "" && sale.ProductOwner != "" && sale.ProductCategory != "" && sale.ProductNumber != "" {
		return
	}

	product, err := s.productRepo.GetProduct(ctx, sale.ProductID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Product lookup failed during payment",
				slog.String("productId", sale.ProductID),
				slog.Any("error", err),
			)
		}

		return
	}

	if sale.ProductNumber == "" {
		sale.ProductNumber = product.ProductNumber
	}
	if sale.ProductName == "" {
		sale.ProductName = product.Name
	}
	if sale.ProductOwner == "" {
		sale.ProductOwner = product.Owner
	}
	if sale.ProductCategory == "" {
		sale.ProductCategory = product.Category.String()
	}
}

func gatewayIndex(gateways []service.PaymentGateway) map[entity.PaymentMethod]service.PaymentGateway {
	index := make(map[entity.PaymentMethod]service.PaymentGateway, len(gateways))
	for _, gw := range gateways {
		if gw != nil {
			index[gw.Method()] = gw
		}
	}

	return index
}
