package postgres

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bad conn", err: driver.ErrBadConn, want: true},
		{name: "connection failure class", err: &pq.Error{Code: "08006"}, want: true},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, want: true},
		{name: "admin shutdown wrapped", err: crerr.Wrap(&pq.Error{Code: "57P01"}, "select nrl game logs"), want: true},
		{name: "too many connections", err: &pq.Error{Code: "53300"}, want: true},
		{name: "undefined table", err: &pq.Error{Code: "42P01"}, want: false},
		{name: "syntax error", err: &pq.Error{Code: "42601"}, want: false},
		{name: "no rows", err: sql.ErrNoRows, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransient(tc.err); got != tc.want {
				t.Fatalf("IsTransient(%v)=%v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	t.Run("parses numeric text", func(t *testing.T) {
		if got := parseDecimal(sql.NullString{String: "12.50", Valid: true}); got != 12.5 {
			t.Fatalf("expected 12.5, got %v", got)
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		if got := parseDecimal(sql.NullString{String: " 3.25 ", Valid: true}); got != 3.25 {
			t.Fatalf("expected 3.25, got %v", got)
		}
	})

	t.Run("returns zero for null", func(t *testing.T) {
		if got := parseDecimal(sql.NullString{}); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("returns zero for invalid text", func(t *testing.T) {
		if got := parseDecimal(sql.NullString{String: "n/a", Valid: true}); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestNullHelpers(t *testing.T) {
	if got := nullFloat64ToFloat64(sql.NullFloat64{}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := nullFloat64ToFloat64(sql.NullFloat64{Float64: 7.5, Valid: true}); got != 7.5 {
		t.Fatalf("expected 7.5, got %v", got)
	}
	if got := nullInt64ToInt64(sql.NullInt64{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := nullStringToString(sql.NullString{String: "x"}); got != "" {
		t.Fatalf("expected empty string for invalid value, got %q", got)
	}
}
