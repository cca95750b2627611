package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/propchart-api/internal/domain/game"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	qb "github.com/riskibarqy/propchart-api/internal/platform/querybuilder"
	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

type GameRepository struct {
	reader
}

func NewGameRepository(db *sqlx.DB, guard *resilience.Guard) *GameRepository {
	return &GameRepository{reader: newReader(db, guard)}
}

func (r *GameRepository) ListBySport(ctx context.Context, s sport.Sport) ([]game.Game, error) {
	query, args, err := qb.Select(gameColumns...).
		From(s.Tables.Games).
		OrderBy("game_date DESC", "game_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s games query", s.Key)
	}

	rows, err := selectRows[gameTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select %s games", s.Key)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
