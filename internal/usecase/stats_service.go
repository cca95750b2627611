package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/propchart-api/internal/domain/average"
	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type StatsQuery struct {
	PlayerID   int64
	Season     string
	Period     gamelog.Period
	OpponentID int64
	WindowSize int
}

// AggregatedStats is the chart payload for one player query.
type AggregatedStats struct {
	GameLogs       []gamelog.GameLog
	SeasonAverages average.Averages
	CareerAverages average.Averages
}

type StatsService struct {
	gameLogs       *GameLogService
	seasonAverages *SeasonAverageService
	careerAverages *CareerAverageService
}

func NewStatsService(gameLogs *GameLogService, seasonAverages *SeasonAverageService, careerAverages *CareerAverageService) *StatsService {
	return &StatsService{
		gameLogs:       gameLogs,
		seasonAverages: seasonAverages,
		careerAverages: careerAverages,
	}
}

// Aggregate loads the windowed logs, the season average and the career
// average concurrently. The first failure cancels the other reads and fails
// the whole request.
func (s *StatsService) Aggregate(ctx context.Context, sp sport.Sport, q StatsQuery) (AggregatedStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Aggregate", sportAttr(sp))
	defer span.End()

	window, err := s.gameLogs.validateWindow(WindowQuery{
		PlayerID:   q.PlayerID,
		Season:     q.Season,
		Period:     q.Period,
		OpponentID: q.OpponentID,
		Size:       q.WindowSize,
	})
	if err != nil {
		return AggregatedStats{}, err
	}
	if !sp.Supports(sport.FeatureStats) {
		return AggregatedStats{}, fmt.Errorf("%w: sport=%s feature=%s", ErrUnsupported, sp.Key, sport.FeatureStats)
	}

	var out AggregatedStats
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		logs, err := s.gameLogs.FetchWindow(ctx, sp, window)
		out.GameLogs = logs
		return err
	})
	p.Go(func(ctx context.Context) error {
		avgs, err := s.seasonAverages.Get(ctx, sp, window.PlayerID, window.Season, window.Period)
		out.SeasonAverages = avgs
		return err
	})
	p.Go(func(ctx context.Context) error {
		avgs, err := s.careerAverages.Compute(ctx, sp, window.PlayerID, window.Period)
		out.CareerAverages = avgs
		return err
	})
	if err := p.Wait(); err != nil {
		return AggregatedStats{}, err
	}

	return out, nil
}
