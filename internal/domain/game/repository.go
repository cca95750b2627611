package game

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type Repository interface {
	// ListBySport returns every game of the sport, most recent first.
	ListBySport(ctx context.Context, s sport.Sport) ([]Game, error)
}
