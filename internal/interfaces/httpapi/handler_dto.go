package httpapi

import (
	"github.com/riskibarqy/propchart-api/internal/domain/average"
	"github.com/riskibarqy/propchart-api/internal/domain/game"
	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/opponent"
	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/usecase"
)

const dateLayout = "2006-01-02"

type sportDTO struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Features []string `json:"features"`
}

type playerDTO struct {
	PlayerID int64  `json:"player_id"`
	FullName string `json:"full_name"`
}

type opponentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type gameLogDTO struct {
	GameDate       string  `json:"game_date"`
	SeasonType     string  `json:"season_type"`
	Points         float64 `json:"pts"`
	Rebounds       float64 `json:"reb"`
	Assists        float64 `json:"ast"`
	MinutesPlayed  float64 `json:"minutes_played"`
	OpponentTeamID int64   `json:"opponent_team_id"`
}

type averagesDTO struct {
	Points   float64 `json:"pts"`
	Rebounds float64 `json:"reb"`
	Assists  float64 `json:"ast"`
}

type statsDTO struct {
	GameLogs   []gameLogDTO `json:"gameLogs"`
	SeasonAvgs averagesDTO  `json:"seasonAvgs"`
	CareerAvgs averagesDTO  `json:"careerAvgs"`
}

type gameDTO struct {
	GameID     int64  `json:"game_id"`
	GameDate   string `json:"game_date"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
}

func sportToDTO(item sport.Sport) sportDTO {
	features := make([]string, 0, len(item.Features))
	for _, f := range item.Features {
		features = append(features, string(f))
	}
	return sportDTO{Key: item.Key, Name: item.Name, Features: features}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerDTO{PlayerID: item.ID, FullName: item.FullName})
	}
	return out
}

func opponentsToDTO(items []opponent.Opponent) []opponentDTO {
	out := make([]opponentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, opponentDTO{ID: item.ID, Name: item.Name})
	}
	return out
}

func gameLogsToDTO(items []gamelog.GameLog) []gameLogDTO {
	out := make([]gameLogDTO, 0, len(items))
	for _, item := range items {
		gameDate := ""
		if !item.GameDate.IsZero() {
			gameDate = item.GameDate.Format(dateLayout)
		}
		out = append(out, gameLogDTO{
			GameDate:       gameDate,
			SeasonType:     string(item.Period),
			Points:         item.Points,
			Rebounds:       item.Rebounds,
			Assists:        item.Assists,
			MinutesPlayed:  item.MinutesPlayed,
			OpponentTeamID: item.OpponentTeamID,
		})
	}
	return out
}

func averagesToDTO(v average.Averages) averagesDTO {
	return averagesDTO{Points: v.Points, Rebounds: v.Rebounds, Assists: v.Assists}
}

func statsToDTO(v usecase.AggregatedStats) statsDTO {
	return statsDTO{
		GameLogs:   gameLogsToDTO(v.GameLogs),
		SeasonAvgs: averagesToDTO(v.SeasonAverages),
		CareerAvgs: averagesToDTO(v.CareerAverages),
	}
}

func gamesToDTO(items []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		gameDate := ""
		if !item.GameDate.IsZero() {
			gameDate = item.GameDate.Format(dateLayout)
		}
		out = append(out, gameDTO{
			GameID:     item.ID,
			GameDate:   gameDate,
			Season:     item.Season,
			SeasonType: item.Period,
			HomeTeamID: item.HomeTeamID,
			AwayTeamID: item.AwayTeamID,
			HomeScore:  item.HomeScore,
			AwayScore:  item.AwayScore,
		})
	}
	return out
}
