package infra

import (
	"context"
	"sync"

	"litepos/internal/config"

	"gorm.io/gorm"
)

// ExecResult is the metadata returned by a write statement.
type ExecResult struct {
	RowsAffected int64
	LastInsertID int64
}

type txKey struct{}

// Gateway owns the single sqlite connection of the process. The connection is
// opened on first use and reused until Close.
type Gateway struct {
	cfg *config.Config

	once sync.Once
	db   *gorm.DB
	err  error
}

// NewGateway returns a gateway for cfg.DatabasePath. It performs no I/O.
func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{cfg: cfg}
}

func (g *Gateway) open(ctx context.Context) (*gorm.DB, error) {
	g.once.Do(func() {
		// the connection outlives the request that happened to open it
		g.db, g.err = NewDatabase(context.WithoutCancel(ctx), g.cfg.DatabasePath, g.cfg.BusyTimeoutMS, g.cfg.LogQueries)
	})
	return g.db, g.err
}

// Conn returns the transaction bound to ctx by WithTransaction, or the shared
// connection scoped to ctx.
func (g *Gateway) Conn(ctx context.Context) (*gorm.DB, error) {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx), nil
	}
	db, err := g.open(ctx)
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx), nil
}

// WithTransaction runs fn inside a transaction. Every Conn call made with the
// context passed to fn uses that transaction. A nested call joins the outer
// transaction instead of starting a new one.
func (g *Gateway) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	db, err := g.open(ctx)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Execute runs a parameterized write statement.
func (g *Gateway) Execute(ctx context.Context, stmt string, args ...interface{}) (ExecResult, error) {
	db, err := g.Conn(ctx)
	if err != nil {
		return ExecResult{}, err
	}
	res, err := db.Statement.ConnPool.ExecContext(ctx, stmt, args...)
	if err != nil {
		return ExecResult{}, err
	}
	out := ExecResult{}
	if out.RowsAffected, err = res.RowsAffected(); err != nil {
		return ExecResult{}, err
	}
	if out.LastInsertID, err = res.LastInsertId(); err != nil {
		return ExecResult{}, err
	}
	return out, nil
}

// Select runs a parameterized query and scans every row into T.
func Select[T any](ctx context.Context, g *Gateway, stmt string, args ...interface{}) ([]T, error) {
	db, err := g.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := db.Raw(stmt, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Close releases the connection if it was opened.
func (g *Gateway) Close() error {
	if g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
