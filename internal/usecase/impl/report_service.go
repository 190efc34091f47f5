package impl

import (
	"context"
	"sort"
	"strings"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/export"
	"expo/internal/domain/repository"
	"expo/internal/usecase"

	"go.uber.org/fx"
)

const (
	uncategorized  = "Uncategorized"
	unknownProduct = "Unknown Product"
)

type reportService struct {
	saleRepo repository.SaleRepository
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	SaleRepo repository.SaleRepository
}

// NewReportService creates the reporting service
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{saleRepo: params.SaleRepo}
}

// Winners groups sales by product owner and ranks owners by the requested criteria.
// Equal values share a rank and the next distinct value takes the next rank.
func (s *reportService) Winners(ctx context.Context, query usecase.WinnersQuery) (*usecase.WinnersReport, error) {
	if query.Criteria == "" {
		query.Criteria = usecase.CriteriaRevenue
	}
	if !query.Criteria.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown criteria: " + string(query.Criteria))
	}
	if query.Limit <= 0 {
		query.Limit = usecase.DefaultWinnersLimit
	}
	if !query.DateFrom.IsZero() && !query.DateTo.IsZero() && query.DateTo.Before(query.DateFrom) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dateTo must not be before dateFrom")
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	owners := groupByOwner(filterByDate(sales, query))

	report := &usecase.WinnersReport{
		TotalParticipants: len(owners),
		Criteria:          query.Criteria,
		DateRange:         dateRange(query),
	}
	for _, stats := range owners {
		report.TotalRevenue += stats.TotalRevenue
		report.TotalSales += stats.TotalSales
		report.TotalBBPayTransactions += stats.BBPayTransactions
	}

	metric := criteriaMetric(query.Criteria)
	sort.SliceStable(owners, func(i, j int) bool {
		mi, mj := metric(owners[i]), metric(owners[j])
		if mi != mj {
			return mi > mj
		}

		return owners[i].Owner < owners[j].Owner
	})

	rank := 0
	for idx, stats := range owners {
		if idx == 0 || metric(stats) != metric(owners[idx-1]) {
			rank++
		}
		stats.Rank = rank
	}

	if len(owners) > query.Limit {
		owners = owners[:query.Limit]
	}
	report.Winners = owners

	return report, nil
}

// WinnersCSV renders the ranked owners as CSV
func (s *reportService) WinnersCSV(ctx context.Context, query usecase.WinnersQuery) ([]byte, error) {
	report, err := s.Winners(ctx, query)
	if err != nil {
		return nil, err
	}

	return export.Winners(report.Winners), nil
}

// filterByDate keeps sales inside the inclusive bounds. Sales without a
// purchase date cannot be compared and are kept.
func filterByDate(sales []*entity.Sale, query usecase.WinnersQuery) []*entity.Sale {
	if query.DateFrom.IsZero() && query.DateTo.IsZero() {
		return sales
	}

	kept := make([]*entity.Sale, 0, len(sales))
	for _, sale := range sales {
		date := sale.PurchaseDate
		if !date.IsZero() {
			if !query.DateFrom.IsZero() && date.Before(query.DateFrom) {
				continue
			}
			if !query.DateTo.IsZero() && date.After(query.DateTo) {
				continue
			}
		}
		kept = append(kept, sale)
	}

	return kept
}

func groupByOwner(sales []*entity.Sale) []*entity.OwnerStats {
	byOwner := make(map[string]*entity.OwnerStats)
	order := make([]*entity.OwnerStats, 0)
	seenCategory := make(map[string]map[string]struct{})
	seenProduct := make(map[string]map[string]struct{})

	for _, sale := range sales {
		owner := strings.TrimSpace(sale.ProductOwner)
		if owner == "" {
			owner = entity.UnknownOwner
		}

		stats, ok := byOwner[owner]
		if !ok {
			stats = &entity.OwnerStats{Owner: owner, Categories: []string{}, Products: []string{}}
			byOwner[owner] = stats
			order = append(order, stats)
			seenCategory[owner] = make(map[string]struct{})
			seenProduct[owner] = make(map[string]struct{})
		}

		stats.TotalSales++
		stats.TotalRevenue += sale.Total
		stats.TotalQuantity += sale.Quantity
		if sale.PaymentMethod == entity.PaymentMethodBBPay {
			stats.BBPayTransactions++
		}

		category := orDefault(sale.ProductCategory, uncategorized)
		if _, seen := seenCategory[owner][category]; !seen {
			seenCategory[owner][category] = struct{}{}
			stats.Categories = append(stats.Categories, category)
		}

		product := orDefault(sale.ProductName, unknownProduct)
		if _, seen := seenProduct[owner][product]; !seen {
			seenProduct[owner][product] = struct{}{}
			stats.Products = append(stats.Products, product)
		}
	}

	for _, stats := range order {
		if stats.TotalSales > 0 {
			stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalSales)
		}
	}

	return order
}

func criteriaMetric(criteria usecase.WinnersCriteria) func(*entity.OwnerStats) float64 {
	switch criteria {
	case usecase.CriteriaSalesCount:
		return func(o *entity.OwnerStats) float64 { return float64(o.TotalSales) }
	case usecase.CriteriaAvgOrderValue:
		return func(o *entity.OwnerStats) float64 { return o.AvgOrderValue }
	case usecase.CriteriaBBPayTransactions:
		return func(o *entity.OwnerStats) float64 { return float64(o.BBPayTransactions) }
	case usecase.CriteriaTotalQuantity:
		return func(o *entity.OwnerStats) float64 { return float64(o.TotalQuantity) }
	default:
		return func(o *entity.OwnerStats) float64 { return o.TotalRevenue }
	}
}

func dateRange(query usecase.WinnersQuery) usecase.DateRange {
	var out usecase.DateRange
	if !query.DateFrom.IsZero() {
		from := query.DateFrom
		out.DateFrom = &from
	}
	if !query.DateTo.IsZero() {
		to := query.DateTo
		out.DateTo = &to
	}

	return out
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}

	return v
}
