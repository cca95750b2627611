package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

// WindowQuery asks for the Size most recent logs of a player in one season
// and period. OpponentID zero means every opponent.
type WindowQuery struct {
	PlayerID   int64
	Season     string
	Period     gamelog.Period
	OpponentID int64
	Size       int
}

type GameLogService struct {
	repo      gamelog.Repository
	maxWindow int
}

// NewGameLogService rejects windows above maxWindow; zero disables the cap.
func NewGameLogService(repo gamelog.Repository, maxWindow int) *GameLogService {
	return &GameLogService{repo: repo, maxWindow: maxWindow}
}

// FetchWindow returns the most recent matching logs ordered oldest first.
func (s *GameLogService) FetchWindow(ctx context.Context, sp sport.Sport, q WindowQuery) ([]gamelog.GameLog, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameLogService.FetchWindow", sportAttr(sp))
	defer span.End()

	q, err := s.validateWindow(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListRecent(ctx, sp, gamelog.WindowQuery{
		PlayerID:       q.PlayerID,
		Season:         q.Season,
		Period:         q.Period,
		OpponentTeamID: q.OpponentID,
		Limit:          q.Size,
	})
	if err != nil {
		return nil, dataSourceError("list recent game logs", err)
	}
	if len(rows) > q.Size {
		rows = rows[:q.Size]
	}

	out := make([]gamelog.GameLog, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row
	}
	return out, nil
}

// List returns a player's logs newest first, optionally narrowed to a season and period.
func (s *GameLogService) List(ctx context.Context, sp sport.Sport, q gamelog.ListQuery) ([]gamelog.GameLog, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameLogService.List", sportAttr(sp))
	defer span.End()

	if q.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	q.Season = strings.TrimSpace(q.Season)
	if q.Period != "" {
		if err := validatePeriod(q.Period); err != nil {
			return nil, err
		}
	}

	rows, err := s.repo.List(ctx, sp, q)
	if err != nil {
		return nil, dataSourceError("list game logs", err)
	}
	return rows, nil
}

func (s *GameLogService) validateWindow(q WindowQuery) (WindowQuery, error) {
	q.Season = strings.TrimSpace(q.Season)
	if q.PlayerID <= 0 {
		return q, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if q.Season == "" {
		return q, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if err := validatePeriod(q.Period); err != nil {
		return q, err
	}
	if q.OpponentID < 0 {
		return q, fmt.Errorf("%w: opponent id must be >= 0", ErrInvalidInput)
	}
	if q.Size <= 0 {
		return q, fmt.Errorf("%w: window must be > 0", ErrInvalidInput)
	}
	if s.maxWindow > 0 && q.Size > s.maxWindow {
		return q, fmt.Errorf("%w: window must be <= %d", ErrInvalidInput, s.maxWindow)
	}
	return q, nil
}

func validatePeriod(p gamelog.Period) error {
	switch p {
	case gamelog.PeriodRegular, gamelog.PeriodPlayoff:
		return nil
	case "":
		return fmt.Errorf("%w: period is required", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, p)
	}
}
