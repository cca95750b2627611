package usecase

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/game"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type GameService struct {
	gameRepo game.Repository
}

func NewGameService(gameRepo game.Repository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

func (s *GameService) ListGames(ctx context.Context, sp sport.Sport) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames", sportAttr(sp))
	defer span.End()

	items, err := s.gameRepo.ListBySport(ctx, sp)
	if err != nil {
		return nil, dataSourceError("list games", err)
	}
	return items, nil
}
