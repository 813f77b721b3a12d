// Package testutil builds throwaway sqlite databases for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"litepos/internal/config"
	"litepos/internal/infra"

	"github.com/stretchr/testify/require"
)

// NewGateway opens a fresh, fully migrated database under t.TempDir() and
// closes it when the test ends.
func NewGateway(t *testing.T) *infra.Gateway {
	t.Helper()
	gw := infra.NewGateway(Config(t))
	_, err := gw.Conn(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

// Config points at a database file inside t.TempDir().
func Config(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:           "test",
		LogLevel:      "error",
		DatabasePath:  filepath.Join(t.TempDir(), "pos.db"),
		BusyTimeoutMS: 5000,
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
