package gamelog

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

// Repository reads per-game player records of a sport.
type Repository interface {
	// ListRecent returns matching logs newest first, at most q.Limit rows.
	ListRecent(ctx context.Context, s sport.Sport, q WindowQuery) ([]GameLog, error)
	// List returns matching logs newest first without a limit.
	List(ctx context.Context, s sport.Sport, q ListQuery) ([]GameLog, error)
	ListStatLines(ctx context.Context, s sport.Sport, playerID int64, period Period) ([]StatLine, error)
	// ListOpponentTeamIDs returns opponent ids seen in the player's logs. Ids may repeat and may be zero.
	ListOpponentTeamIDs(ctx context.Context, s sport.Sport, playerID int64) ([]int64, error)
}
