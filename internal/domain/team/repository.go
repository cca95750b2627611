package team

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

// Repository describes team lookups needed by use cases.
type Repository interface {
	// ListByIDs returns the teams that exist among ids; missing ids are skipped.
	ListByIDs(ctx context.Context, s sport.Sport, ids []int64) ([]Team, error)
}
