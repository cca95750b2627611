package postgres

import "database/sql"

// Season averages are read as text and parsed with parseDecimal.
type seasonAverageTableModel struct {
	PlayerID      int64          `db:"player_id"`
	Season        string         `db:"season"`
	AvgPtsRegular sql.NullString `db:"avg_pts_regular"`
	AvgRebRegular sql.NullString `db:"avg_reb_regular"`
	AvgAstRegular sql.NullString `db:"avg_ast_regular"`
	AvgPtsPlayoff sql.NullString `db:"avg_pts_playoff"`
	AvgRebPlayoff sql.NullString `db:"avg_reb_playoff"`
	AvgAstPlayoff sql.NullString `db:"avg_ast_playoff"`
}
