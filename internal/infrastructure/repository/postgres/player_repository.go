package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	qb "github.com/riskibarqy/propchart-api/internal/platform/querybuilder"
	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

type PlayerRepository struct {
	reader
}

func NewPlayerRepository(db *sqlx.DB, guard *resilience.Guard) *PlayerRepository {
	return &PlayerRepository{reader: newReader(db, guard)}
}

func (r *PlayerRepository) ListBySport(ctx context.Context, s sport.Sport) ([]player.Player, error) {
	query, args, err := qb.Select("player_id", "full_name").
		From(s.Tables.Players).
		OrderBy("full_name", "player_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s players query", s.Key)
	}

	rows, err := selectRows[playerTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select %s players", s.Key)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:       row.PlayerID,
			FullName: nullStringToString(row.FullName),
		})
	}
	return out, nil
}
