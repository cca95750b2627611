package sport

import (
	"fmt"
	"strings"
)

// Feature names an operation a sport exposes to the front end.
type Feature string

const (
	FeaturePlayers   Feature = "players"
	FeatureOpponents Feature = "opponents"
	FeatureStats     Feature = "stats"
	FeatureGameLogs  Feature = "gamelogs"
	FeatureGames     Feature = "games"
)

// Tables holds the per-sport relation names backing every read.
type Tables struct {
	GameLogs       string
	Teams          string
	Players        string
	Games          string
	SeasonAverages string
}

// Sport describes where a sport's data lives and which operations it serves.
type Sport struct {
	Key      string
	Name     string
	Tables   Tables
	Features []Feature
}

func (s Sport) Supports(f Feature) bool {
	for _, item := range s.Features {
		if item == f {
			return true
		}
	}
	return false
}

func (s Sport) Validate() error {
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("sport key is required")
	}
	if strings.TrimSpace(s.Tables.GameLogs) == "" {
		return fmt.Errorf("sport %s: game log table is required", s.Key)
	}
	if s.Supports(FeatureStats) && strings.TrimSpace(s.Tables.SeasonAverages) == "" {
		return fmt.Errorf("sport %s: season average table is required for %s", s.Key, FeatureStats)
	}
	if s.Supports(FeatureOpponents) && strings.TrimSpace(s.Tables.Teams) == "" {
		return fmt.Errorf("sport %s: team table is required for %s", s.Key, FeatureOpponents)
	}
	if s.Supports(FeaturePlayers) && strings.TrimSpace(s.Tables.Players) == "" {
		return fmt.Errorf("sport %s: player table is required for %s", s.Key, FeaturePlayers)
	}
	if s.Supports(FeatureGames) && strings.TrimSpace(s.Tables.Games) == "" {
		return fmt.Errorf("sport %s: game table is required for %s", s.Key, FeatureGames)
	}
	return nil
}

func ParseFeature(raw string) (Feature, error) {
	f := Feature(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FeaturePlayers, FeatureOpponents, FeatureStats, FeatureGameLogs, FeatureGames:
		return f, nil
	default:
		return "", fmt.Errorf("unknown sport feature %q", raw)
	}
}
