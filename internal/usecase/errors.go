package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnsupported           = errors.New("operation not supported")
	ErrDataSource            = errors.New("data source failure")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// dataSourceError classifies a failed repository read. Caller cancellation is
// passed through unchanged so that it is not reported as a backend fault.
func dataSourceError(op string, err error) error {
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrDataSource, op, err)
	}
}
