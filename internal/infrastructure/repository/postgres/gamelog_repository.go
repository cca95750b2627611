package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	qb "github.com/riskibarqy/propchart-api/internal/platform/querybuilder"
	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

type GameLogRepository struct {
	reader
}

func NewGameLogRepository(db *sqlx.DB, guard *resilience.Guard) *GameLogRepository {
	return &GameLogRepository{reader: newReader(db, guard)}
}

func (r *GameLogRepository) ListRecent(ctx context.Context, s sport.Sport, q gamelog.WindowQuery) ([]gamelog.GameLog, error) {
	query, args, err := buildRecentGameLogsQuery(s, q)
	if err != nil {
		return nil, crerr.Wrapf(err, "build recent %s game logs query", s.Key)
	}

	rows, err := selectRows[gameLogTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select recent %s game logs", s.Key)
	}
	return toGameLogs(rows), nil
}

func (r *GameLogRepository) List(ctx context.Context, s sport.Sport, q gamelog.ListQuery) ([]gamelog.GameLog, error) {
	query, args, err := buildGameLogsQuery(s, q)
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s game logs query", s.Key)
	}

	rows, err := selectRows[gameLogTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select %s game logs", s.Key)
	}
	return toGameLogs(rows), nil
}

func (r *GameLogRepository) ListStatLines(ctx context.Context, s sport.Sport, playerID int64, period gamelog.Period) ([]gamelog.StatLine, error) {
	query, args, err := qb.Select("pts", "reb", "ast").
		From(s.Tables.GameLogs).
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("season_type", string(period)),
		).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s stat lines query", s.Key)
	}

	rows, err := selectRows[statLineTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select %s stat lines", s.Key)
	}

	out := make([]gamelog.StatLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamelog.StatLine{
			Points:   nullFloat64ToFloat64(row.Points),
			Rebounds: nullFloat64ToFloat64(row.Rebounds),
			Assists:  nullFloat64ToFloat64(row.Assists),
		})
	}
	return out, nil
}

func (r *GameLogRepository) ListOpponentTeamIDs(ctx context.Context, s sport.Sport, playerID int64) ([]int64, error) {
	query, args, err := qb.SelectDistinct("opponent_team_id").
		From(s.Tables.GameLogs).
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNotNull("opponent_team_id"),
		).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s opponent ids query", s.Key)
	}

	rows, err := selectRows[opponentIDTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return nil, crerr.Wrapf(err, "select %s opponent ids", s.Key)
	}

	out := make([]int64, 0, len(rows))
	for _, row := range rows {
		out = append(out, nullInt64ToInt64(row.OpponentTeamID))
	}
	return out, nil
}

func buildRecentGameLogsQuery(s sport.Sport, q gamelog.WindowQuery) (string, []any, error) {
	return qb.Select(gameLogColumns...).
		From(s.Tables.GameLogs).
		Where(
			qb.Eq("player_id", q.PlayerID),
			qb.Eq("season", q.Season),
			qb.Eq("season_type", string(q.Period)),
			qb.When(q.OpponentTeamID != 0, qb.Eq("opponent_team_id", q.OpponentTeamID)),
		).
		OrderBy("game_date DESC").
		Limit(q.Limit).
		ToSQL()
}

func buildGameLogsQuery(s sport.Sport, q gamelog.ListQuery) (string, []any, error) {
	return qb.Select(gameLogColumns...).
		From(s.Tables.GameLogs).
		Where(
			qb.Eq("player_id", q.PlayerID),
			qb.When(q.Season != "", qb.Eq("season", q.Season)),
			qb.When(q.Period != "", qb.Eq("season_type", string(q.Period))),
		).
		OrderBy("game_date DESC").
		ToSQL()
}

func toGameLogs(rows []gameLogTableModel) []gamelog.GameLog {
	out := make([]gamelog.GameLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
