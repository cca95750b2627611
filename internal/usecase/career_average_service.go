package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/propchart-api/internal/domain/average"
	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type CareerAverageService struct {
	repo gamelog.Repository
}

func NewCareerAverageService(repo gamelog.Repository) *CareerAverageService {
	return &CareerAverageService{repo: repo}
}

// Compute averages every log of the player in period across all seasons.
// The divisor is the log count, or 1 when there are no logs, so an empty
// history averages to zero. Results are rounded to two decimals, half away
// from zero (see average.RoundTo2).
func (s *CareerAverageService) Compute(ctx context.Context, sp sport.Sport, playerID int64, period gamelog.Period) (average.Averages, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerAverageService.Compute", sportAttr(sp))
	defer span.End()

	if playerID <= 0 {
		return average.Averages{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := validatePeriod(period); err != nil {
		return average.Averages{}, err
	}

	lines, err := s.repo.ListStatLines(ctx, sp, playerID, period)
	if err != nil {
		return average.Averages{}, dataSourceError("list career stat lines", err)
	}

	var sum gamelog.StatLine
	for _, line := range lines {
		sum.Points += line.Points
		sum.Rebounds += line.Rebounds
		sum.Assists += line.Assists
	}

	count := float64(len(lines))
	if count == 0 {
		count = 1
	}

	return average.Averages{
		Points:   average.RoundTo2(sum.Points / count),
		Rebounds: average.RoundTo2(sum.Rebounds / count),
		Assists:  average.RoundTo2(sum.Assists / count),
	}, nil
}
