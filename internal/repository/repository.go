package repository

import (
	"context"
	"time"

	"litepos/internal/infra"

	"gorm.io/gorm"
)

// first returns the first row matched by q, or nil when nothing matches.
func first[T any](q *gorm.DB) (*T, error) {
	var rows []T
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// updateColumns writes cols to the row with the given id. An empty set issues
// no statement at all, so updated_at stays untouched.
func updateColumns(ctx context.Context, gw *infra.Gateway, m interface{}, id int64, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}
	db, err := gw.Conn(ctx)
	if err != nil {
		return err
	}
	return db.Model(m).Where("id = ?", id).Updates(cols).Error
}

// softDelete stamps deleted_at; gorm.DeletedAt hides the row from every later read.
func softDelete(ctx context.Context, gw *infra.Gateway, m interface{}, id int64) error {
	db, err := gw.Conn(ctx)
	if err != nil {
		return err
	}
	return db.Delete(m, id).Error
}

// dayBounds converts inclusive calendar-day filters into a half-open UTC range
// [from 00:00, to+1 00:00).
func dayBounds(from, to *time.Time) (lo, hi *time.Time) {
	if from != nil {
		d := startOfDay(*from)
		lo = &d
	}
	if to != nil {
		d := startOfDay(*to).AddDate(0, 0, 1)
		hi = &d
	}
	return lo, hi
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
