package usecase

import (
	"context"

	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayers(ctx context.Context, sp sport.Sport) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers", sportAttr(sp))
	defer span.End()

	items, err := s.playerRepo.ListBySport(ctx, sp)
	if err != nil {
		return nil, dataSourceError("list players", err)
	}
	return items, nil
}
