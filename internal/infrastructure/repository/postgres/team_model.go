package postgres

import "database/sql"

type teamTableModel struct {
	TeamID   int64          `db:"team_id"`
	TeamName sql.NullString `db:"team_name"`
}
