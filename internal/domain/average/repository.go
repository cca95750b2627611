package average

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type Repository interface {
	// GetSeasonRecord reports false when no record exists for the player and season.
	GetSeasonRecord(ctx context.Context, s sport.Sport, playerID int64, season string) (SeasonRecord, bool, error)
}
