package dto

import "time"

// GroupBy selects the bucket width of a sales report.
type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
)

// ─── Filters ─────────────────────────────────────────────────────────────────

type SalesReportFilter struct {
	GroupBy  GroupBy
	DateFrom *time.Time
	DateTo   *time.Time
}

// ProductMetricsFilter: Limit <= 0 means no limit.
type ProductMetricsFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

// ─── Rows ────────────────────────────────────────────────────────────────────

type SalesByPeriod struct {
	Period        string `gorm:"column:period"`
	OrderCount    int64  `gorm:"column:order_count"`
	TotalCents    int64  `gorm:"column:total_cents"`
	TaxCents      int64  `gorm:"column:tax_cents"`
	AvgOrderCents int64  `gorm:"column:avg_order_cents"`
}

type ProductMetric struct {
	ProductID         *int64  `gorm:"column:product_id"`
	ProductName       string  `gorm:"column:product_name"`
	ProductSKU        *string `gorm:"column:product_sku"`
	TotalQuantity     int64   `gorm:"column:total_quantity"`
	TotalRevenueCents int64   `gorm:"column:total_revenue_cents"`
	TotalTaxCents     int64   `gorm:"column:total_tax_cents"`
	OrderCount        int64   `gorm:"column:order_count"`
}

type InventorySummary struct {
	ID                int64   `gorm:"column:id"`
	Name              string  `gorm:"column:name"`
	SKU               *string `gorm:"column:sku"`
	StockQuantity     int     `gorm:"column:stock_quantity"`
	LowStockThreshold int     `gorm:"column:low_stock_threshold"`
	CostPriceCents    int64   `gorm:"column:cost_price_cents"`
	SalePriceCents    int64   `gorm:"column:sale_price_cents"`
	CategoryName      *string `gorm:"column:category_name"`
	LowStock          bool    `gorm:"column:low_stock"`
}
