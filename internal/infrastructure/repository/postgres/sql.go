package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

// reader runs read queries through the data source guard.
type reader struct {
	db    *sqlx.DB
	guard *resilience.Guard
}

func newReader(db *sqlx.DB, guard *resilience.Guard) reader {
	return reader{db: db, guard: guard}
}

func selectRows[T any](ctx context.Context, r reader, query string, args ...any) ([]T, error) {
	return resilience.Do(ctx, r.guard, func(ctx context.Context) ([]T, error) {
		var rows []T
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// getRow reports false when the query matched no row.
func getRow[T any](ctx context.Context, r reader, query string, args ...any) (T, bool, error) {
	type result struct {
		row   T
		found bool
	}
	out, err := resilience.Do(ctx, r.guard, func(ctx context.Context) (result, error) {
		var row T
		if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
			if isNotFound(err) {
				return result{}, nil
			}
			return result{}, err
		}
		return result{row: row, found: true}, nil
	})
	return out.row, out.found, err
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsTransient reports whether err is a postgres failure worth retrying:
// connection exceptions, serialization failures, deadlocks, shutdowns and
// connection exhaustion.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code.Class() == "08" {
		return true
	}
	switch pqErr.Code {
	case "40001", "40P01", "57P01", "57P02", "57P03", "53300":
		return true
	default:
		return false
	}
}

func nullFloat64ToFloat64(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return v.Float64
}

func nullInt64ToInt64(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

func nullStringToString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// parseDecimal reads a numeric column delivered as text. NULL and
// unparsable values read as zero.
func parseDecimal(v sql.NullString) float64 {
	if !v.Valid {
		return 0
	}
	out, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
	if err != nil {
		return 0
	}
	return out
}
