package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/domain/team"
	qb "github.com/riskibarqy/propchart-api/internal/platform/querybuilder"
	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

type TeamRepository struct {
	reader
}

func NewTeamRepository(db *sqlx.DB, guard *resilience.Guard) *TeamRepository {
	return &TeamRepository{reader: newReader(db, guard)}
}

func (r *TeamRepository) ListByIDs(ctx context.Context, s sport.Sport, ids []int64) ([]team.Team, error) {
	if len(ids) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.Select("team_id", "team_name").
		From(s.Tables.Teams).
		Where(qb.In("team_id", ids)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s teams by ids query", s.Key)
	}

	rows, err := selectRows[teamTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select %s teams by ids", s.Key)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:   row.TeamID,
			Name: nullStringToString(row.TeamName),
		})
	}
	return out, nil
}
