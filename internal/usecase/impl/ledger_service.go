package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	deliverycontext "expo/internal/delivery/context"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/export"
	"expo/internal/domain/repository"
	"expo/internal/domain/service"
	"expo/internal/usecase"
	"expo/internal/util"

	"go.uber.org/fx"
)

type ledgerService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	mirrorRepo  repository.MirrorRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	SaleRepo    repository.SaleRepository
	MirrorRepo  repository.MirrorRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewLedgerService creates the product and sales ledger service
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		productRepo: params.ProductRepo,
		saleRepo:    params.SaleRepo,
		mirrorRepo:  params.MirrorRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// ListProducts returns every product with aggregates recomputed from the sales ledger
func (s *ledgerService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	totals := entity.AggregateSales(sales)
	out := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		out = append(out, product.WithAggregate(totals[product.ID]))
	}

	return out, nil
}

// GetProduct returns one product with aggregates recomputed from the sales ledger
func (s *ledgerService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	return product.WithAggregate(entity.AggregateSales(sales)[product.ID]), nil
}

// CreateProduct validates and persists a product, then refreshes the products mirror
func (s *ledgerService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product, err := newProductFromInput(input)
	if err != nil {
		return nil, err
	}

	product.ApplyDefaults(s.now())

	if err := s.productRepo.PutProduct(ctx, product); err != nil {
		return nil, err
	}

	s.refreshMirror(ctx, repository.MirrorProducts)

	return product, nil
}

func newProductFromInput(input *usecase.CreateProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}

	name := strings.TrimSpace(input.Name)
	owner := strings.TrimSpace(input.Owner)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case owner == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("owner is required")
	case input.Price == nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price is required")
	case math.IsNaN(*input.Price) || math.IsInf(*input.Price, 0) || *input.Price < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}

	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, domainerrors.ErrInvalidCategory.WithDetails("unknown category: " + input.Category)
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}

	return &entity.Product{
		Name:        name,
		Owner:       owner,
		Price:       *input.Price,
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Tags:        tags,
	}, nil
}

// ListSales filters the repaired ledger, newest first, and summarizes the filtered set
func (s *ledgerService) ListSales(ctx context.Context, filter usecase.SalesFilter) (*usecase.SalesListing, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit and offset must not be negative")
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Sale, 0, len(sales))
	for _, sale := range sales {
		if filter.Status != "" && string(sale.Status) != filter.Status {
			continue
		}
		if filter.PaymentMethod != "" && string(sale.PaymentMethod) != filter.PaymentMethod {
			continue
		}
		filtered = append(filtered, sale)
	}
	sortNewestFirst(filtered)

	listing := &usecase.SalesListing{
		SalesSummary: summarizeSales(filtered),
		Sales:        page(filtered, filter.Offset, filter.Limit),
	}

	return listing, nil
}

func sortNewestFirst(sales []*entity.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].PurchaseDate.After(sales[j].PurchaseDate)
	})
}

func summarizeSales(sales []*entity.Sale) usecase.SalesSummary {
	summary := usecase.SalesSummary{TotalSales: len(sales)}
	products := make(map[string]struct{})
	customers := make(map[string]struct{})

	for _, sale := range sales {
		summary.TotalRevenue += sale.Total
		if sale.PaymentMethod == entity.PaymentMethodBBPay {
			summary.BBPayTransactions++
		}
		products[sale.ProductID] = struct{}{}
		if sale.BuyerEmail != "" {
			customers[sale.BuyerEmail] = struct{}{}
		}
	}

	summary.UniqueProducts = len(products)
	summary.UniqueCustomers = len(customers)

	return summary
}

func page(sales []*entity.Sale, offset, limit int) []*entity.Sale {
	if offset >= len(sales) {
		return []*entity.Sale{}
	}
	sales = sales[offset:]
	if limit > 0 && limit < len(sales) {
		sales = sales[:limit]
	}

	return sales
}

// CreateSale records a single sale
func (s *ledgerService) CreateSale(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if err := s.RecordSales(ctx, []*entity.Sale{sale}); err != nil {
		return nil, err
	}

	return sale, nil
}

// RecordSales validates every sale before writing any of them. Each sale is an
// independent record, so a storage failure leaves earlier writes in place.
func (s *ledgerService) RecordSales(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("no sales to record")
	}

	now := s.now()
	for _, sale := range sales {
		if err := prepareSale(sale, now); err != nil {
			return err
		}
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	for _, sale := range sales {
		if err := s.saleRepo.PutSale(ctx, sale); err != nil {
			return err
		}
		logger.InfoContext(ctx, "Sale recorded",
			slog.String("saleId", sale.ID),
			slog.String("productId", sale.ProductID),
			slog.Float64("total", sale.Total),
		)
	}

	s.refreshMirror(ctx, repository.MirrorSales)
	s.refreshMirror(ctx, repository.MirrorProducts)

	for _, sale := range sales {
		s.publishSaleEvent(ctx, sale)
	}

	return nil
}

func prepareSale(sale *entity.Sale, now time.Time) error {
	if sale == nil {
		return domainerrors.ErrValidationFailed.WithDetails("sale is required")
	}
	if strings.TrimSpace(sale.ProductID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("productId is required")
	}
	if sale.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}
	if sale.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	if strings.TrimSpace(string(sale.PaymentMethod)) == "" {
		sale.PaymentMethod = entity.PaymentMethodBBPay
	}
	sale.ApplyDefaults(now)
	if !sale.PaymentMethod.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + string(sale.PaymentMethod))
	}

	return nil
}

// ExportCSV renders a whole collection as CSV
func (s *ledgerService) ExportCSV(ctx context.Context, kind repository.MirrorKind) ([]byte, error) {
	switch kind {
	case repository.MirrorProducts:
		products, err := s.ListProducts(ctx)
		if err != nil {
			return nil, err
		}

		return export.Products(products), nil
	case repository.MirrorSales:
		sales, err := s.saleRepo.ListSales(ctx)
		if err != nil {
			return nil, err
		}
		sortNewestFirst(sales)

		return export.Sales(sales), nil
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown export: " + string(kind))
	}
}

// ExportSalesCSV renders a filtered sales listing as CSV
func (s *ledgerService) ExportSalesCSV(ctx context.Context, filter usecase.SalesFilter) ([]byte, error) {
	listing, err := s.ListSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	return export.Sales(listing.Sales), nil
}

// RebuildMirrors regenerates both CSV mirrors from the per-record files
func (s *ledgerService) RebuildMirrors(ctx context.Context) error {
	for _, kind := range []repository.MirrorKind{repository.MirrorProducts, repository.MirrorSales} {
		if err := s.writeMirror(ctx, kind); err != nil {
			return err
		}
	}

	return nil
}

func (s *ledgerService) writeMirror(ctx context.Context, kind repository.MirrorKind) error {
	data, err := s.ExportCSV(ctx, kind)
	if err != nil {
		return err
	}

	if err := s.mirrorRepo.WriteMirror(ctx, kind, data); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "CSV mirror written",
		slog.String("mirror", string(kind)),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", util.Checksum(data)),
	)

	return nil
}

// refreshMirror rebuilds one mirror after a write. The record is already
// persisted, so a failure here is logged and not returned.
func (s *ledgerService) refreshMirror(ctx context.Context, kind repository.MirrorKind) {
	if err := s.writeMirror(ctx, kind); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).ErrorContext(ctx, "Failed to refresh CSV mirror",
			slog.String("mirror", string(kind)),
			slog.Any("error", err),
		)
	}
}

func (s *ledgerService) publishSaleEvent(ctx context.Context, sale *entity.Sale) {
	event := &service.SaleEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		SaleID:        sale.ID,
		ProductID:     sale.ProductID,
		ProductOwner:  sale.ProductOwner,
		Quantity:      sale.Quantity,
		Total:         sale.Total,
		Currency:      sale.Currency,
		PaymentMethod: string(sale.PaymentMethod),
		TransactionID: sale.TransactionID,
		PurchaseDate:  sale.PurchaseDate,
	}

	if err := s.publisher.PublishSaleEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish sale event",
			slog.String("saleId", sale.ID),
			slog.Any("error", err),
		)
	}
}
