package player

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type Repository interface {
	// ListBySport returns every player of the sport ordered by full name.
	ListBySport(ctx context.Context, s sport.Sport) ([]Player, error)
}
