package infra_test

import (
	"context"
	"errors"
	"testing"

	"litepos/internal/infra"
	"litepos/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settingRow struct {
	Key   string `gorm:"column:key"`
	Value string `gorm:"column:value"`
}

func TestGateway_MigrationsSeedSettings(t *testing.T) {
	gw := testutil.NewGateway(t)

	rows, err := infra.Select[settingRow](context.Background(), gw,
		"SELECT key, value FROM settings WHERE key IN (?, ?) ORDER BY key",
		"next_order_number", "order_number_prefix")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, settingRow{Key: "next_order_number", Value: "1"}, rows[0])
	assert.Equal(t, settingRow{Key: "order_number_prefix", Value: "ORD-"}, rows[1])
}

func TestGateway_ReopenSkipsAppliedMigrations(t *testing.T) {
	cfg := testutil.Config(t)
	ctx := context.Background()

	first := infra.NewGateway(cfg)
	_, err := first.Conn(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := infra.NewGateway(cfg)
	defer second.Close()
	_, err = second.Conn(ctx)
	require.NoError(t, err)
}

func TestGateway_ExecuteReportsInsertID(t *testing.T) {
	gw := testutil.NewGateway(t)
	ctx := context.Background()

	res, err := gw.Execute(ctx,
		"INSERT INTO categories (uuid, name, color) VALUES (?, ?, ?)", "c-1", "Drinks", "#000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)
	assert.Positive(t, res.LastInsertID)

	res, err = gw.Execute(ctx, "UPDATE categories SET name = ? WHERE id = ?", "Beverages", res.LastInsertID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)

	names, err := infra.Select[string](ctx, gw, "SELECT name FROM categories")
	require.NoError(t, err)
	assert.Equal(t, []string{"Beverages"}, names)
}

func TestGateway_ExecuteErrorPropagates(t *testing.T) {
	gw := testutil.NewGateway(t)

	_, err := gw.Execute(context.Background(), "INSERT INTO no_such_table (x) VALUES (?)", 1)
	assert.Error(t, err)
}

func TestGateway_WithTransactionRollsBack(t *testing.T) {
	gw := testutil.NewGateway(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := gw.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := gw.Execute(ctx, "INSERT INTO categories (uuid, name, color) VALUES (?, ?, ?)", "c-1", "Drinks", "#000000")
		require.NoError(t, err)

		// nested calls join the outer transaction
		return gw.WithTransaction(ctx, func(ctx context.Context) error {
			_, err := gw.Execute(ctx, "INSERT INTO categories (uuid, name, color) VALUES (?, ?, ?)", "c-2", "Snacks", "#000000")
			require.NoError(t, err)
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	count, err := infra.Select[int64](ctx, gw, "SELECT COUNT(*) FROM categories")
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, count)
}

func TestGateway_WithTransactionCommits(t *testing.T) {
	gw := testutil.NewGateway(t)
	ctx := context.Background()

	err := gw.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := gw.Execute(ctx, "INSERT INTO categories (uuid, name, color) VALUES (?, ?, ?)", "c-1", "Drinks", "#000000")
		return err
	})
	require.NoError(t, err)

	count, err := infra.Select[int64](ctx, gw, "SELECT COUNT(*) FROM categories")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, count)
}
