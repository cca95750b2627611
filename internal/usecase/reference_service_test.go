package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/propchart-api/internal/domain/game"
	"github.com/riskibarqy/propchart-api/internal/domain/player"
	gamemock "github.com/riskibarqy/propchart-api/internal/mocks/domain/game"
	playermock "github.com/riskibarqy/propchart-api/internal/mocks/domain/player"
	"github.com/riskibarqy/propchart-api/internal/platform/resilience"
)

func TestPlayerService_ListPlayers(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)
	repo.On("ListBySport", anyCtx, nrlSport).Return([]player.Player{{ID: 501, FullName: "Nathan Cleary"}}, nil).Once()

	got, err := service.ListPlayers(context.Background(), nrlSport)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(got) != 1 || got[0].ID != 501 {
		t.Fatalf("unexpected players: %+v", got)
	}
}

func TestGameService_ListGames_OpenCircuit(t *testing.T) {
	t.Parallel()

	repo := gamemock.NewRepository(t)
	service := NewGameService(repo)
	repo.On("ListBySport", anyCtx, nrlSport).Return([]game.Game(nil), resilience.ErrCircuitOpen).Once()

	if _, err := service.ListGames(context.Background(), nrlSport); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestDataSourceError_PassesCancellationThrough(t *testing.T) {
	t.Parallel()

	err := dataSourceError("list games", context.Canceled)
	if errors.Is(err, ErrDataSource) {
		t.Fatalf("expected cancellation not to be reported as a data source failure")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected wrapped context.Canceled, got %v", err)
	}

	if err := dataSourceError("list games", context.DeadlineExceeded); !errors.Is(err, ErrDataSource) {
		t.Fatalf("expected timeouts to be data source failures, got %v", err)
	}
}
