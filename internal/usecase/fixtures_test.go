package usecase

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/stretchr/testify/mock"
)

var nrlSport = sport.Sport{
	Key:  "nrl",
	Name: "NRL",
	Tables: sport.Tables{
		GameLogs:       "nrl_player_gamelogs",
		Teams:          "nrl_teams",
		Players:        "nrl_players",
		Games:          "nrl_games",
		SeasonAverages: "mv_nrl_player_avgs",
	},
	Features: []sport.Feature{sport.FeatureStats, sport.FeatureOpponents, sport.FeaturePlayers},
}

var anyCtx = mock.MatchedBy(func(context.Context) bool { return true })

var anyWindow = mock.AnythingOfType("gamelog.WindowQuery")
