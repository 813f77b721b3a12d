package repository_test

import (
	"context"
	"testing"
	"time"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"
	"litepos/internal/repository"
	"litepos/internal/testutil"

	"github.com/stretchr/testify/require"
)

// ── Fixtures ──────────────────────────────────────────────────────────────────

type fixture struct {
	gw         *infra.Gateway
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	orders     repository.OrderRepository
	payments   repository.PaymentRepository
	refunds    repository.RefundRepository
	settings   repository.SettingRepository
	reports    repository.ReportRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gw := testutil.NewGateway(t)
	return &fixture{
		gw:         gw,
		users:      repository.NewUserRepository(gw),
		categories: repository.NewCategoryRepository(gw),
		products:   repository.NewProductRepository(gw),
		customers:  repository.NewCustomerRepository(gw),
		orders:     repository.NewOrderRepository(gw),
		payments:   repository.NewPaymentRepository(gw),
		refunds:    repository.NewRefundRepository(gw),
		settings:   repository.NewSettingRepository(gw),
		reports:    repository.NewReportRepository(gw),
	}
}

func (f *fixture) user(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.users.Create(context.Background(), dto.CreateUserInput{
		Name: name, PINHash: "hash-" + name, Role: model.RoleCashier,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) product(t *testing.T, in dto.CreateProductInput) int64 {
	t.Helper()
	id, err := f.products.Create(context.Background(), in)
	require.NoError(t, err)
	return id
}

type line struct {
	productID int64
	name      string
	qty       int
	unit      int64
	tax       int64
}

// completedOrder inserts a completed order with the given lines and pins its
// completed_at.
func (f *fixture) completedOrder(t *testing.T, userID int64, at time.Time, lines ...line) int64 {
	t.Helper()
	ctx := context.Background()

	var sub, tax int64
	for _, l := range lines {
		sub += l.unit * int64(l.qty)
		tax += l.tax
	}
	number, err := f.orders.NextOrderNumber(ctx)
	require.NoError(t, err)
	id, err := f.orders.Create(ctx, dto.CreateOrderInput{
		OrderNumber: number, UserID: userID,
		SubtotalCents: sub, TaxTotalCents: tax, TotalCents: sub + tax,
	})
	require.NoError(t, err)
	for _, l := range lines {
		pid := l.productID
		_, err := f.orders.AddItem(ctx, dto.AddOrderItemInput{
			OrderID: id, ProductID: &pid, ProductName: l.name,
			Quantity: l.qty, UnitPriceCents: l.unit,
			LineSubtotalCents: l.unit * int64(l.qty), LineTaxCents: l.tax,
			LineTotalCents: l.unit*int64(l.qty) + l.tax,
		})
		require.NoError(t, err)
	}
	require.NoError(t, f.orders.Complete(ctx, id))
	f.setTime(t, "orders", "completed_at", id, at)
	return id
}

func (f *fixture) setTime(t *testing.T, table, column string, id int64, at time.Time) {
	t.Helper()
	_, err := f.gw.Execute(context.Background(),
		"UPDATE "+table+" SET "+column+" = ? WHERE id = ?", at.UTC(), id)
	require.NoError(t, err)
}

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}
