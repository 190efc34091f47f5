// Package export renders ledger collections as CSV text.
//
// Free-text columns are always double-quoted with embedded quotes doubled.
// Other columns are quoted only when they contain a separator, a quote or a
// line break. Rows are joined with "\n" and the output has no trailing newline.
package export

import (
	"strconv"
	"strings"
	"time"

	"expo/internal/domain/entity"
)

// Header rows, one per export kind.
const (
	ProductsHeader = "Product ID,Product Number,Product Name,Owner,Price,Description,Category,Created Date,Status,Image URL,Tags,Money Earned,Total Sales"
	SalesHeader    = "Sale ID,Product ID,Product Number,Product Name,Product Owner,Product Category,Quantity,Price,Total Amount,Buyer Name,Buyer Email,Buyer Phone,Payment Method,BBPAY ID,Transaction ID,Purchase Date,Currency,Payment Status,Status"
	WinnersHeader  = "Rank,Owner,Total Sales,Total Revenue,BBPAY Transactions,Total Quantity,Average Order Value,Categories,Products"
)

// TimestampLayout is the ISO-8601 form used for dates in exports.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Products renders products, including their derived aggregates.
func Products(products []*entity.Product) []byte {
	lines := make([]string, 0, len(products)+1)
	lines = append(lines, ProductsHeader)

	for _, p := range products {
		var r row
		r.raw(p.ID)
		r.raw(p.ProductNumber)
		r.text(p.Name)
		r.text(p.Owner)
		r.number(p.Price)
		r.text(p.Description)
		r.raw(p.Category.String())
		r.timestamp(p.CreatedAt)
		r.raw(string(p.Status))
		r.raw(p.ImageURL)
		if len(p.Tags) > 0 {
			r.text(strings.Join(p.Tags, ","))
		} else {
			r.raw("")
		}
		r.number(p.MoneyEarned)
		r.integer(p.TotalSales)
		lines = append(lines, r.String())
	}

	return []byte(strings.Join(lines, "\n"))
}

// Sales renders sales in the order given.
func Sales(sales []*entity.Sale) []byte {
	lines := make([]string, 0, len(sales)+1)
	lines = append(lines, SalesHeader)

	for _, s := range sales {
		var r row
		r.raw(s.ID)
		r.raw(s.ProductID)
		r.raw(s.ProductNumber)
		r.text(s.ProductName)
		r.text(s.ProductOwner)
		r.raw(s.ProductCategory)
		r.integer(s.Quantity)
		r.number(s.Price)
		r.number(s.Total)
		r.text(s.BuyerName)
		r.text(s.BuyerEmail)
		r.text(s.BuyerPhone)
		r.raw(string(s.PaymentMethod))
		r.raw(s.PaymentIdentifier)
		r.raw(s.TransactionID)
		r.timestamp(s.PurchaseDate)
		r.raw(orDefault(s.Currency, entity.DefaultCurrency))
		r.raw(orDefault(string(s.PaymentStatus), string(entity.PaymentStatusSuccess)))
		r.raw(orDefault(string(s.Status), string(entity.SaleStatusCompleted)))
		lines = append(lines, r.String())
	}

	return []byte(strings.Join(lines, "\n"))
}

// Winners renders ranked owner statistics.
func Winners(winners []*entity.OwnerStats) []byte {
	lines := make([]string, 0, len(winners)+1)
	lines = append(lines, WinnersHeader)

	for _, w := range winners {
		var r row
		r.integer(w.Rank)
		r.text(w.Owner)
		r.integer(w.TotalSales)
		r.number(w.TotalRevenue)
		r.integer(w.BBPayTransactions)
		r.integer(w.TotalQuantity)
		r.raw(strconv.FormatFloat(w.AvgOrderValue, 'f', 2, 64))
		r.text(strings.Join(w.Categories, ", "))
		r.text(strings.Join(w.Products, ", "))
		lines = append(lines, r.String())
	}

	return []byte(strings.Join(lines, "\n"))
}

// FormatTimestamp renders t in UTC with millisecond precision. The zero time renders empty.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(TimestampLayout)
}

type row struct {
	b      strings.Builder
	fields int
}

func (r *row) sep() {
	if r.fields > 0 {
		r.b.WriteByte(',')
	}
	r.fields++
}

func (r *row) text(s string) {
	r.sep()
	r.b.WriteByte('"')
	r.b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	r.b.WriteByte('"')
}

func (r *row) raw(s string) {
	if strings.ContainsAny(s, ",\"\r\n") {
		r.text(s)

		return
	}
	r.sep()
	r.b.WriteString(s)
}

func (r *row) number(f float64) {
	r.sep()
	r.b.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
}

func (r *row) integer(i int) {
	r.sep()
	r.b.WriteString(strconv.Itoa(i))
}

func (r *row) timestamp(t time.Time) {
	r.raw(FormatTimestamp(t))
}

func (r *row) String() string {
	return r.b.String()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
