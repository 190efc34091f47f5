package usecase

import (
	"context"
	"time"

	"expo/internal/domain/entity"
)

// WinnersCriteria is the statistic owners are ranked by
type WinnersCriteria string

const (
	CriteriaRevenue           WinnersCriteria = "revenue"
	CriteriaSalesCount        WinnersCriteria = "sales_count"
	CriteriaAvgOrderValue     WinnersCriteria = "avg_order_value"
	CriteriaBBPayTransactions WinnersCriteria = "bbpay_transactions"
	CriteriaTotalQuantity     WinnersCriteria = "total_quantity"
)

// DefaultWinnersLimit caps a report when no limit is requested
const DefaultWinnersLimit = 10

// IsValid checks if the criteria is a known statistic
func (c WinnersCriteria) IsValid() bool {
	switch c {
	case CriteriaRevenue, CriteriaSalesCount, CriteriaAvgOrderValue, CriteriaBBPayTransactions, CriteriaTotalQuantity:
		return true
	default:
		return false
	}
}

// WinnersQuery selects and orders the report. Zero dates are open bounds.
type WinnersQuery struct {
	Criteria WinnersCriteria
	Limit    int
	DateFrom time.Time
	DateTo   time.Time
}

// DateRange echoes the requested bounds
type DateRange struct {
	DateFrom *time.Time `json:"dateFrom"`
	DateTo   *time.Time `json:"dateTo"`
}

// WinnersReport is the ranked owner leaderboard
type WinnersReport struct {
	TotalParticipants      int                  `json:"totalParticipants"`
	TotalRevenue           float64              `json:"totalRevenue"`
	TotalSales             int                  `json:"totalSales"`
	TotalBBPayTransactions int                  `json:"totalBBPAYTransactions"`
	Criteria               WinnersCriteria      `json:"criteria"`
	DateRange              DateRange            `json:"dateRange"`
	Winners                []*entity.OwnerStats `json:"winners"`
}

// ReportUsecase defines the reporting use cases
type ReportUsecase interface {
	// Winners ranks product owners by the requested criteria
	Winners(ctx context.Context, query WinnersQuery) (*WinnersReport, error)

	// WinnersCSV renders the same report as CSV
	WinnersCSV(ctx context.Context, query WinnersQuery) ([]byte, error)
}
