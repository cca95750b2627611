package postgres

import "database/sql"

type playerTableModel struct {
	PlayerID int64          `db:"player_id"`
	FullName sql.NullString `db:"full_name"`
}
