package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/opponent"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/domain/team"
)

type OpponentService struct {
	gameLogRepo gamelog.Repository
	teamRepo    team.Repository
}

func NewOpponentService(gameLogRepo gamelog.Repository, teamRepo team.Repository) *OpponentService {
	return &OpponentService{
		gameLogRepo: gameLogRepo,
		teamRepo:    teamRepo,
	}
}

// ListOpponents returns every team the player has faced across all seasons,
// sorted by name and then id. Ids without a team record are named opponent.UnknownName.
func (s *OpponentService) ListOpponents(ctx context.Context, sp sport.Sport, playerID int64) ([]opponent.Opponent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OpponentService.ListOpponents", sportAttr(sp))
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	rawIDs, err := s.gameLogRepo.ListOpponentTeamIDs(ctx, sp, playerID)
	if err != nil {
		return nil, dataSourceError("list opponent ids", err)
	}

	ids := distinctOpponentIDs(rawIDs)
	if len(ids) == 0 {
		return []opponent.Opponent{}, nil
	}

	teams, err := s.teamRepo.ListByIDs(ctx, sp, ids)
	if err != nil {
		return nil, dataSourceError("list teams by ids", err)
	}
	names := make(map[int64]string, len(teams))
	for _, item := range teams {
		names[item.ID] = item.Name
	}

	out := make([]opponent.Opponent, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = opponent.UnknownName
		}
		out = append(out, opponent.Opponent{ID: id, Name: name})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// distinctOpponentIDs drops zero ids and duplicates and sorts the rest ascending.
func distinctOpponentIDs(raw []int64) []int64 {
	seen := make(map[int64]struct{}, len(raw))
	out := make([]int64, 0, len(raw))
	for _, id := range raw {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
