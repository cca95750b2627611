package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/propchart-api/internal/domain/opponent"
	"github.com/riskibarqy/propchart-api/internal/domain/team"
	gamelogmock "github.com/riskibarqy/propchart-api/internal/mocks/domain/gamelog"
	teammock "github.com/riskibarqy/propchart-api/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestOpponentService_ListOpponents_DeduplicatesAndSortsByName(t *testing.T) {
	t.Parallel()

	gameLogRepo := gamelogmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewOpponentService(gameLogRepo, teamRepo)

	// B once, A twice
	gameLogRepo.On("ListOpponentTeamIDs", anyCtx, nrlSport, int64(501)).Return([]int64{2, 1, 1}, nil).Once()
	teamRepo.
		On("ListByIDs", anyCtx, nrlSport, []int64{1, 2}).
		Return([]team.Team{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}, nil).
		Once()

	got, err := service.ListOpponents(context.Background(), nrlSport, 501)
	if err != nil {
		t.Fatalf("list opponents: %v", err)
	}

	want := []opponent.Opponent{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	if len(got) != len(want) {
		t.Fatalf("unexpected opponents: %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected opponents: got=%+v want=%+v", got, want)
		}
	}
}

func TestOpponentService_ListOpponents_UnknownTeamsAndTies(t *testing.T) {
	t.Parallel()

	gameLogRepo := gamelogmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewOpponentService(gameLogRepo, teamRepo)

	gameLogRepo.On("ListOpponentTeamIDs", anyCtx, nrlSport, int64(501)).Return([]int64{40, 0, 7, 30, 12}, nil).Once()
	teamRepo.
		On("ListByIDs", anyCtx, nrlSport, []int64{7, 12, 30, 40}).
		Return([]team.Team{{ID: 12, Name: "Broncos"}, {ID: 40, Name: "Storm"}}, nil).
		Once()

	got, err := service.ListOpponents(context.Background(), nrlSport, 501)
	if err != nil {
		t.Fatalf("list opponents: %v", err)
	}

	want := []opponent.Opponent{
		{ID: 12, Name: "Broncos"},
		{ID: 40, Name: "Storm"},
		{ID: 7, Name: opponent.UnknownName},
		{ID: 30, Name: opponent.UnknownName},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected opponents: %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected opponents: got=%+v want=%+v", got, want)
		}
	}
}

func TestOpponentService_ListOpponents_NoOpponentsSkipsTeamLookup(t *testing.T) {
	t.Parallel()

	gameLogRepo := gamelogmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewOpponentService(gameLogRepo, teamRepo)

	gameLogRepo.On("ListOpponentTeamIDs", anyCtx, nrlSport, int64(501)).Return([]int64{0, 0}, nil).Once()

	got, err := service.ListOpponents(context.Background(), nrlSport, 501)
	if err != nil {
		t.Fatalf("list opponents: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	teamRepo.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestOpponentService_ListOpponents_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid player", func(t *testing.T) {
		service := NewOpponentService(gamelogmock.NewRepository(t), teammock.NewRepository(t))
		if _, err := service.ListOpponents(context.Background(), nrlSport, 0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("team lookup failure", func(t *testing.T) {
		gameLogRepo := gamelogmock.NewRepository(t)
		teamRepo := teammock.NewRepository(t)
		service := NewOpponentService(gameLogRepo, teamRepo)

		gameLogRepo.On("ListOpponentTeamIDs", anyCtx, nrlSport, int64(501)).Return([]int64{3}, nil).Once()
		teamRepo.On("ListByIDs", anyCtx, nrlSport, []int64{3}).Return(nil, errors.New("connection refused")).Once()

		if _, err := service.ListOpponents(context.Background(), nrlSport, 501); !errors.Is(err, ErrDataSource) {
			t.Fatalf("expected ErrDataSource, got %v", err)
		}
	})
}
