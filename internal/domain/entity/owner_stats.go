package entity

// UnknownOwner groups sales whose product owner was never recorded.
const UnknownOwner = "Unknown Owner"

// OwnerStats aggregates the sales of one product owner for reporting.
type OwnerStats struct {
	Owner             string   `json:"owner"`
	TotalSales        int      `json:"totalSales"`
	TotalRevenue      float64  `json:"totalRevenue"`
	BBPayTransactions int      `json:"bbpayTransactions"`
	TotalQuantity     int      `json:"totalQuantity"`
	AvgOrderValue     float64  `json:"avgOrderValue"`
	Categories        []string `json:"categories"`
	Products          []string `json:"products"`
	Rank              int      `json:"rank"`
}
