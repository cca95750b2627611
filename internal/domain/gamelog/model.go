package gamelog

import (
	"fmt"
	"strings"
	"time"
)

// Period is the competitive context of a game.
type Period string

const (
	PeriodRegular Period = "Regular"
	PeriodPlayoff Period = "Playoff"
)

func ParsePeriod(raw string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "regular":
		return PeriodRegular, nil
	case "playoff", "playoffs":
		return PeriodPlayoff, nil
	default:
		return "", fmt.Errorf("unknown period %q", raw)
	}
}

// GameLog is one player's line for one game. Absent stats decode as zero.
type GameLog struct {
	GameDate       time.Time
	Period         Period
	Points         float64
	Rebounds       float64
	Assists        float64
	MinutesPlayed  float64
	OpponentTeamID int64
}

// StatLine is the subset of a game log summed by career averages.
type StatLine struct {
	Points   float64
	Rebounds float64
	Assists  float64
}

// WindowQuery selects the Limit most recent logs matching every filter.
// OpponentTeamID zero disables the opponent filter.
type WindowQuery struct {
	PlayerID       int64
	Season         string
	Period         Period
	OpponentTeamID int64
	Limit          int
}

// ListQuery filters a raw game log listing; empty fields are not applied.
type ListQuery struct {
	PlayerID int64
	Season   string
	Period   Period
}
