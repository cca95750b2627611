package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/propchart-api/internal/domain/average"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	qb "github.com/riskibarqy/propchart-api/internal/platform/querybuilder"
	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

type SeasonAverageRepository struct {
	reader
}

func NewSeasonAverageRepository(db *sqlx.DB, guard *resilience.Guard) *SeasonAverageRepository {
	return &SeasonAverageRepository{reader: newReader(db, guard)}
}

func (r *SeasonAverageRepository) GetSeasonRecord(ctx context.Context, s sport.Sport, playerID int64, season string) (average.SeasonRecord, bool, error) {
	query, args, err := qb.Select(
		"player_id",
		"season",
		"avg_pts_regular::text AS avg_pts_regular",
		"avg_reb_regular::text AS avg_reb_regular",
		"avg_ast_regular::text AS avg_ast_regular",
		"avg_pts_playoff::text AS avg_pts_playoff",
		"avg_reb_playoff::text AS avg_reb_playoff",
		"avg_ast_playoff::text AS avg_ast_playoff",
	).
		From(s.Tables.SeasonAverages).
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("season", season),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return average.SeasonRecord{}, false, crerr.Wrapf(err, "build %s season average query", s.Key)
	}

	row, found, err := getRow[seasonAverageTableModel](ctx, r.reader, query, args...)
	if err != nil {
		return average.SeasonRecord{}, false, crerr.Wrapf(err, "get %s season average", s.Key)
	}
	if !found {
		return average.SeasonRecord{}, false, nil
	}
	return toSeasonRecord(row), true, nil
}

func toSeasonRecord(row seasonAverageTableModel) average.SeasonRecord {
	return average.SeasonRecord{
		PlayerID:        row.PlayerID,
		Season:          row.Season,
		RegularPoints:   parseDecimal(row.AvgPtsRegular),
		RegularRebounds: parseDecimal(row.AvgRebRegular),
		RegularAssists:  parseDecimal(row.AvgAstRegular),
		PlayoffPoints:   parseDecimal(row.AvgPtsPlayoff),
		PlayoffRebounds: parseDecimal(row.AvgRebPlayoff),
		PlayoffAssists:  parseDecimal(row.AvgAstPlayoff),
	}
}
