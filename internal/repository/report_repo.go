package repository

import (
	"context"
	"strings"

	"litepos/internal/dto"
	"litepos/internal/infra"
)

// ReportRepository runs the read-only aggregations behind the reports screen.
// Only completed, non-deleted orders are counted.
type ReportRepository interface {
	SalesByPeriod(ctx context.Context, f dto.SalesReportFilter) ([]dto.SalesByPeriod, error)
	ProductMetrics(ctx context.Context, f dto.ProductMetricsFilter) ([]dto.ProductMetric, error)
	// InventorySummary lists active products, lowest stock first.
	InventorySummary(ctx context.Context) ([]dto.InventorySummary, error)
}

type reportRepo struct{ gw *infra.Gateway }

func NewReportRepository(gw *infra.Gateway) ReportRepository { return &reportRepo{gw: gw} }

// periodFormat maps a bucket width to its strftime pattern. Weeks are
// Monday-based week-of-year numbers.
func periodFormat(g dto.GroupBy) string {
	switch g {
	case dto.GroupByWeek:
		return "%Y-W%W"
	case dto.GroupByMonth:
		return "%Y-%m"
	default:
		return "%Y-%m-%d"
	}
}

func (r *reportRepo) SalesByPeriod(ctx context.Context, f dto.SalesReportFilter) ([]dto.SalesByPeriod, error) {
	var sb strings.Builder
	args := []interface{}{periodFormat(f.GroupBy)}
	sb.WriteString(`
		SELECT
			strftime(?, completed_at) AS period,
			COUNT(*) AS order_count,
			SUM(total_cents) AS total_cents,
			SUM(tax_total_cents) AS tax_cents,
			CAST(ROUND(AVG(total_cents)) AS INTEGER) AS avg_order_cents
		FROM orders
		WHERE status = 'completed' AND deleted_at IS NULL AND completed_at IS NOT NULL`)

	from, to := dayBounds(f.DateFrom, f.DateTo)
	if from != nil {
		sb.WriteString(" AND completed_at >= ?")
		args = append(args, *from)
	}
	if to != nil {
		sb.WriteString(" AND completed_at < ?")
		args = append(args, *to)
	}
	sb.WriteString(" GROUP BY period ORDER BY period")

	return infra.Select[dto.SalesByPeriod](ctx, r.gw, sb.String(), args...)
}

func (r *reportRepo) ProductMetrics(ctx context.Context, f dto.ProductMetricsFilter) ([]dto.ProductMetric, error) {
	var sb strings.Builder
	var args []interface{}
	sb.WriteString(`
		SELECT
			oi.product_id,
			oi.product_name,
			MAX(oi.product_sku) AS product_sku,
			SUM(oi.quantity) AS total_quantity,
			SUM(oi.line_subtotal_cents) AS total_revenue_cents,
			SUM(oi.line_tax_cents) AS total_tax_cents,
			COUNT(DISTINCT oi.order_id) AS order_count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 'completed' AND o.deleted_at IS NULL`)

	from, to := dayBounds(f.DateFrom, f.DateTo)
	if from != nil {
		sb.WriteString(" AND o.completed_at >= ?")
		args = append(args, *from)
	}
	if to != nil {
		sb.WriteString(" AND o.completed_at < ?")
		args = append(args, *to)
	}
	sb.WriteString(" GROUP BY oi.product_id, oi.product_name ORDER BY total_revenue_cents DESC, oi.product_name")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, f.Limit)
	}

	return infra.Select[dto.ProductMetric](ctx, r.gw, sb.String(), args...)
}

func (r *reportRepo) InventorySummary(ctx context.Context) ([]dto.InventorySummary, error) {
	return infra.Select[dto.InventorySummary](ctx, r.gw, `
		SELECT
			p.id, p.name, p.sku, p.stock_quantity, p.low_stock_threshold,
			p.cost_price_cents, p.sale_price_cents,
			c.name AS category_name,
			p.stock_quantity <= p.low_stock_threshold AS low_stock
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id AND c.deleted_at IS NULL
		WHERE p.deleted_at IS NULL AND p.is_active = 1
		ORDER BY p.stock_quantity ASC, p.name`)
}
