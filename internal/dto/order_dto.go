package dto

import "time"

// ─── Inputs ──────────────────────────────────────────────────────────────────

// CreateOrderInput: Status defaults to "draft". Totals are stored as given;
// TotalCents is expected to be SubtotalCents - DiscountCents + TaxTotalCents.
type CreateOrderInput struct {
	OrderNumber   string
	Status        string
	CustomerID    *int64
	UserID        int64
	SubtotalCents int64
	DiscountCents int64
	TaxTotalCents int64
	TotalCents    int64
	Notes         *string
}

type AddOrderItemInput struct {
	OrderID           int64
	ProductID         *int64
	ProductName       string
	ProductSKU        *string
	Quantity          int
	UnitPriceCents    int64
	TaxRateBps        int
	LineSubtotalCents int64
	LineTaxCents      int64
	LineTotalCents    int64
	Notes             *string
}

type AddPaymentInput struct {
	OrderID         int64
	Method          string
	AmountCents     int64
	ChangeCents     int64
	ReferenceNumber *string
}

type CreateRefundInput struct {
	OrderID          int64
	UserID           int64
	TotalRefundCents int64
	Reason           *string
}

type AddRefundItemInput struct {
	RefundID          int64
	OrderItemID       int64
	Quantity          int
	RefundAmountCents int64
	Restock           bool
}

// ─── Partial update ──────────────────────────────────────────────────────────

type OrderPatch struct {
	Notes         *string
	SubtotalCents *int64
	DiscountCents *int64
	TaxTotalCents *int64
	TotalCents    *int64
}

func (p OrderPatch) Columns() map[string]interface{} {
	c := columns{}
	c.nullStr("notes", p.Notes)
	c.int64("subtotal_cents", p.SubtotalCents)
	c.int64("discount_cents", p.DiscountCents)
	c.int64("tax_total_cents", p.TaxTotalCents)
	c.int64("total_cents", p.TotalCents)
	return c
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// OrderFilter narrows an order listing. DateFrom and DateTo are calendar days
// (UTC); both ends are inclusive.
type OrderFilter struct {
	Status     string
	CustomerID *int64
	UserID     *int64
	DateFrom   *time.Time
	DateTo     *time.Time
}

// ─── Workflows ───────────────────────────────────────────────────────────────

type PaymentInput struct {
	Method          string  `validate:"oneof=cash check credit_card other"`
	AmountCents     int64   `validate:"min=0"`
	ReferenceNumber *string `validate:"omitempty,max=100"`
}

// CheckoutRequest turns the current cart into a completed order.
type CheckoutRequest struct {
	UserID        int64          `validate:"required"`
	DiscountCents int64          `validate:"min=0"`
	Payments      []PaymentInput `validate:"required,min=1,dive"`
}

type CheckoutResult struct {
	OrderID       int64
	OrderNumber   string
	SubtotalCents int64
	DiscountCents int64
	TaxTotalCents int64
	TotalCents    int64
	PaidCents     int64
	ChangeCents   int64
}

// RefundLine selects an order item to refund. A nil AmountCents refunds the
// line total prorated by Quantity.
type RefundLine struct {
	OrderItemID int64  `validate:"required"`
	Quantity    int    `validate:"min=1"`
	AmountCents *int64 `validate:"omitempty,min=0"`
	Restock     bool
}

type RefundRequest struct {
	OrderID int64        `validate:"required"`
	UserID  int64        `validate:"required"`
	Reason  *string      `validate:"omitempty,max=500"`
	Lines   []RefundLine `validate:"required,min=1,dive"`
}

// RefundedItem is what earlier refunds already returned for one order item.
type RefundedItem struct {
	OrderItemID int64 `gorm:"column:order_item_id"`
	Quantity    int   `gorm:"column:quantity"`
	AmountCents int64 `gorm:"column:amount_cents"`
}

type RefundResult struct {
	RefundID         int64
	TotalRefundCents int64
}
