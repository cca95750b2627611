package sport

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry keeps the sports served by this process, keyed by Sport.Key.
type Registry struct {
	mu     sync.RWMutex
	sports map[string]Sport
}

func NewRegistry(items ...Sport) *Registry {
	r := &Registry{sports: make(map[string]Sport, len(items))}
	for _, item := range items {
		r.sports[item.Key] = item
	}
	return r
}

// DefaultRegistry mirrors the surface each sport had in the prop chart app.
// Only nrl ships season and career averages out of the box.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Sport{
			Key:  "nba",
			Name: "NBA",
			Tables: Tables{
				GameLogs:       "nba_player_gamelogs",
				Teams:          "nba_teams",
				Players:        "nba_players",
				Games:          "nba_games",
				SeasonAverages: "mv_nba_player_avgs",
			},
			Features: []Feature{FeaturePlayers, FeatureOpponents, FeatureGames},
		},
		Sport{
			Key:  "nfl",
			Name: "NFL",
			Tables: Tables{
				GameLogs:       "nfl_player_gamelogs",
				Teams:          "nfl_teams",
				Players:        "nflplayers",
				Games:          "nfl_games",
				SeasonAverages: "mv_nfl_player_avgs",
			},
			Features: []Feature{FeaturePlayers, FeatureOpponents},
		},
		Sport{
			Key:  "nrl",
			Name: "NRL",
			Tables: Tables{
				GameLogs:       "nrl_player_gamelogs",
				Teams:          "nrl_teams",
				Players:        "nrl_players",
				Games:          "nrl_games",
				SeasonAverages: "mv_nrl_player_avgs",
			},
			Features: []Feature{FeatureStats, FeatureGames},
		},
		Sport{
			Key:  "afl",
			Name: "AFL",
			Tables: Tables{
				GameLogs:       "afl_player_gamelogs",
				Teams:          "afl_teams",
				Players:        "afl_players",
				Games:          "afl_games",
				SeasonAverages: "mv_afl_player_avgs",
			},
			Features: []Feature{FeatureGameLogs, FeatureGames},
		},
	)
}

func (r *Registry) Get(key string) (Sport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.sports[strings.ToLower(strings.TrimSpace(key))]
	return item, ok
}

// List returns every registered sport ordered by key.
func (r *Registry) List() []Sport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Sport, 0, len(r.sports))
	for _, item := range r.sports {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ApplyFeatures replaces the feature set of the listed sports.
func (r *Registry) ApplyFeatures(overrides map[string][]Feature) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, features := range overrides {
		item, ok := r.sports[key]
		if !ok {
			return fmt.Errorf("unknown sport %q", key)
		}
		item.Features = append([]Feature(nil), features...)
		if err := item.Validate(); err != nil {
			return err
		}
		r.sports[key] = item
	}
	return nil
}
