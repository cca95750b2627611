package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
)

var gameLogColumns = []string{
	"game_date",
	"season_type",
	"pts",
	"reb",
	"ast",
	"minutes_played",
	"opponent_team_id",
}

type gameLogTableModel struct {
	GameDate       time.Time       `db:"game_date"`
	SeasonType     sql.NullString  `db:"season_type"`
	Points         sql.NullFloat64 `db:"pts"`
	Rebounds       sql.NullFloat64 `db:"reb"`
	Assists        sql.NullFloat64 `db:"ast"`
	MinutesPlayed  sql.NullFloat64 `db:"minutes_played"`
	OpponentTeamID sql.NullInt64   `db:"opponent_team_id"`
}

func (m gameLogTableModel) toDomain() gamelog.GameLog {
	return gamelog.GameLog{
		GameDate:       m.GameDate,
		Period:         gamelog.Period(nullStringToString(m.SeasonType)),
		Points:         nullFloat64ToFloat64(m.Points),
		Rebounds:       nullFloat64ToFloat64(m.Rebounds),
		Assists:        nullFloat64ToFloat64(m.Assists),
		MinutesPlayed:  nullFloat64ToFloat64(m.MinutesPlayed),
		OpponentTeamID: nullInt64ToInt64(m.OpponentTeamID),
	}
}

type statLineTableModel struct {
	Points   sql.NullFloat64 `db:"pts"`
	Rebounds sql.NullFloat64 `db:"reb"`
	Assists  sql.NullFloat64 `db:"ast"`
}

type opponentIDTableModel struct {
	OpponentTeamID sql.NullInt64 `db:"opponent_team_id"`
}
