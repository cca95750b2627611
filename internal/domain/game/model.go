package game

import "time"

// Game is a scheduled or completed fixture of a sport.
type Game struct {
	ID         int64
	GameDate   time.Time
	Season     string
	Period     string
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
}
