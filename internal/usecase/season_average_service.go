package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/propchart-api/internal/domain/average"
	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type SeasonAverageService struct {
	repo average.Repository
}

func NewSeasonAverageService(repo average.Repository) *SeasonAverageService {
	return &SeasonAverageService{repo: repo}
}

// Get returns the precomputed season averages for period. A player without a
// record for the season gets zeros.
func (s *SeasonAverageService) Get(ctx context.Context, sp sport.Sport, playerID int64, season string, period gamelog.Period) (average.Averages, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonAverageService.Get", sportAttr(sp))
	defer span.End()

	season = strings.TrimSpace(season)
	if playerID <= 0 {
		return average.Averages{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if season == "" {
		return average.Averages{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if err := validatePeriod(period); err != nil {
		return average.Averages{}, err
	}

	record, found, err := s.repo.GetSeasonRecord(ctx, sp, playerID, season)
	if err != nil {
		return average.Averages{}, dataSourceError("get season average", err)
	}
	if !found {
		return average.Averages{}, nil
	}

	if period == gamelog.PeriodPlayoff {
		return average.Averages{
			Points:   record.PlayoffPoints,
			Rebounds: record.PlayoffRebounds,
			Assists:  record.PlayoffAssists,
		}, nil
	}
	return average.Averages{
		Points:   record.RegularPoints,
		Rebounds: record.RegularRebounds,
		Assists:  record.RegularAssists,
	}, nil
}
