package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/propchart-api/internal/domain/game"
)

var gameColumns = []string{
	"game_id",
	"game_date",
	"season",
	"season_type",
	"home_team_id",
	"away_team_id",
	"home_score",
	"away_score",
}

type gameTableModel struct {
	GameID     int64          `db:"game_id"`
	GameDate   time.Time      `db:"game_date"`
	Season     sql.NullString `db:"season"`
	SeasonType sql.NullString `db:"season_type"`
	HomeTeamID sql.NullInt64  `db:"home_team_id"`
	AwayTeamID sql.NullInt64  `db:"away_team_id"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:         m.GameID,
		GameDate:   m.GameDate,
		Season:     nullStringToString(m.Season),
		Period:     nullStringToString(m.SeasonType),
		HomeTeamID: nullInt64ToInt64(m.HomeTeamID),
		AwayTeamID: nullInt64ToInt64(m.AwayTeamID),
		HomeScore:  int(nullInt64ToInt64(m.HomeScore)),
		AwayScore:  int(nullInt64ToInt64(m.AwayScore)),
	}
}
