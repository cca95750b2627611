package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/propchart-api/internal/domain/average"
	"github.com/riskibarqy/propchart-api/internal/domain/game"
	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/domain/team"
	averagemock "github.com/riskibarqy/propchart-api/internal/mocks/domain/average"
	gamemock "github.com/riskibarqy/propchart-api/internal/mocks/domain/game"
	gamelogmock "github.com/riskibarqy/propchart-api/internal/mocks/domain/gamelog"
	playermock "github.com/riskibarqy/propchart-api/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/propchart-api/internal/mocks/domain/team"
	"github.com/riskibarqy/propchart-api/internal/platform/logging"
	"github.com/riskibarqy/propchart-api/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type testDeps struct {
	router      http.Handler
	gameLogRepo *gamelogmock.Repository
	averageRepo *averagemock.Repository
	teamRepo    *teammock.Repository
	playerRepo  *playermock.Repository
	gameRepo    *gamemock.Repository
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	deps := testDeps{
		gameLogRepo: gamelogmock.NewRepository(t),
		averageRepo: averagemock.NewRepository(t),
		teamRepo:    teammock.NewRepository(t),
		playerRepo:  playermock.NewRepository(t),
		gameRepo:    gamemock.NewRepository(t),
	}

	gameLogService := usecase.NewGameLogService(deps.gameLogRepo, 50)
	handler := NewHandler(
		usecase.NewSportCatalog(sport.DefaultRegistry()),
		usecase.NewPlayerService(deps.playerRepo),
		usecase.NewOpponentService(deps.gameLogRepo, deps.teamRepo),
		usecase.NewStatsService(
			gameLogService,
			usecase.NewSeasonAverageService(deps.averageRepo),
			usecase.NewCareerAverageService(deps.gameLogRepo),
		),
		gameLogService,
		usecase.NewGameService(deps.gameRepo),
		logging.NewNop(),
	)
	deps.router = NewRouter(handler, logging.NewNop(), []string{"*"}, time.Second)
	return deps
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) googleErrorBody {
	t.Helper()

	var body struct {
		Error *googleErrorBody `json:"error"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error == nil || len(body.Error.Errors) == 0 {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
	return *body.Error
}

func TestHandler_GetStats_Success(t *testing.T) {
	deps := newTestDeps(t)

	deps.gameLogRepo.
		On("ListRecent", mock.Anything, mock.AnythingOfType("sport.Sport"), gamelog.WindowQuery{
			PlayerID:       501,
			Season:         "2024",
			Period:         gamelog.PeriodRegular,
			OpponentTeamID: 7,
			Limit:          2,
		}).
		Return([]gamelog.GameLog{
			{GameDate: time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC), Period: gamelog.PeriodRegular, Points: 8, OpponentTeamID: 7},
			{GameDate: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), Period: gamelog.PeriodRegular, Points: 12, OpponentTeamID: 7},
		}, nil).
		Once()
	deps.averageRepo.
		On("GetSeasonRecord", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(501), "2024").
		Return(average.SeasonRecord{PlayerID: 501, Season: "2024", RegularPoints: 11.4, RegularRebounds: 3.1}, true, nil).
		Once()
	deps.gameLogRepo.
		On("ListStatLines", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(501), gamelog.PeriodRegular).
		Return([]gamelog.StatLine{{Points: 10}, {Points: 11}, {Points: 12}}, nil).
		Once()

	rec := serve(t, deps.router, "/v1/sports/nrl/players/501/stats?season=2024&period=Regular&window=2&team=7")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data statsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Data.GameLogs) != 2 {
		t.Fatalf("expected 2 game logs, got %+v", body.Data.GameLogs)
	}
	if body.Data.GameLogs[0].GameDate != "2024-03-07" || body.Data.GameLogs[1].GameDate != "2024-04-14" {
		t.Fatalf("expected ascending dates, got %+v", body.Data.GameLogs)
	}
	if body.Data.GameLogs[0].SeasonType != "Regular" {
		t.Fatalf("unexpected season_type: %q", body.Data.GameLogs[0].SeasonType)
	}
	if body.Data.SeasonAvgs.Points != 11.4 || body.Data.SeasonAvgs.Rebounds != 3.1 {
		t.Fatalf("unexpected season averages: %+v", body.Data.SeasonAvgs)
	}
	if body.Data.CareerAvgs.Points != 11 {
		t.Fatalf("unexpected career averages: %+v", body.Data.CareerAvgs)
	}
}

func TestHandler_GetStats_TeamDefaultsToAll(t *testing.T) {
	deps := newTestDeps(t)

	deps.gameLogRepo.
		On("ListRecent", mock.Anything, mock.AnythingOfType("sport.Sport"), gamelog.WindowQuery{
			PlayerID: 501,
			Season:   "2024",
			Period:   gamelog.PeriodPlayoff,
			Limit:    5,
		}).
		Return(nil, nil).
		Once()
	deps.averageRepo.
		On("GetSeasonRecord", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(501), "2024").
		Return(average.SeasonRecord{}, false, nil).
		Once()
	deps.gameLogRepo.
		On("ListStatLines", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(501), gamelog.PeriodPlayoff).
		Return(nil, nil).
		Once()

	rec := serve(t, deps.router, "/v1/sports/nrl/players/501/stats?season=2024&period=Playoff&window=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data statsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.GameLogs == nil || len(body.Data.GameLogs) != 0 {
		t.Fatalf("expected empty game log list, got %+v", body.Data.GameLogs)
	}
	if body.Data.SeasonAvgs != (averagesDTO{}) || body.Data.CareerAvgs != (averagesDTO{}) {
		t.Fatalf("expected zero averages, got %+v %+v", body.Data.SeasonAvgs, body.Data.CareerAvgs)
	}
}

func TestHandler_GetStats_ValidationFailuresSkipDataSource(t *testing.T) {
	targets := map[string]string{
		"missing season": "/v1/sports/nrl/players/501/stats?period=Regular&window=5",
		"missing period": "/v1/sports/nrl/players/501/stats?season=2024&window=5",
		"missing window": "/v1/sports/nrl/players/501/stats?season=2024&period=Regular",
		"bad window":     "/v1/sports/nrl/players/501/stats?season=2024&period=Regular&window=ten",
		"zero window":    "/v1/sports/nrl/players/501/stats?season=2024&period=Regular&window=0",
		"window too big": "/v1/sports/nrl/players/501/stats?season=2024&period=Regular&window=51",
		"bad period":     "/v1/sports/nrl/players/501/stats?season=2024&period=Preseason&window=5",
		"bad team":       "/v1/sports/nrl/players/501/stats?season=2024&period=Regular&window=5&team=abc",
		"bad player":     "/v1/sports/nrl/players/abc/stats?season=2024&period=Regular&window=5",
	}

	for name, target := range targets {
		t.Run(name, func(t *testing.T) {
			deps := newTestDeps(t)

			rec := serve(t, deps.router, target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			if got := decodeError(t, rec).Errors[0].Reason; got != "invalidInput" {
				t.Fatalf("unexpected reason: %q", got)
			}
		})
	}
}

func TestHandler_GetStats_UnknownAndUnsupportedSport(t *testing.T) {
	deps := newTestDeps(t)

	rec := serve(t, deps.router, "/v1/sports/cricket/players/501/stats?season=2024&period=Regular&window=5")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Errors[0].Reason; got != "notFound" {
		t.Fatalf("unexpected reason: %q", got)
	}

	rec = serve(t, deps.router, "/v1/sports/nba/players/501/stats?season=2024&period=Regular&window=5")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Errors[0].Reason; got != "unsupported" {
		t.Fatalf("unexpected reason: %q", got)
	}
}

func TestHandler_GetStats_DataSourceFailure(t *testing.T) {
	deps := newTestDeps(t)

	deps.gameLogRepo.
		On("ListRecent", mock.Anything, mock.AnythingOfType("sport.Sport"), mock.AnythingOfType("gamelog.WindowQuery")).
		Return(nil, errors.New("connection reset")).
		Maybe()
	deps.averageRepo.
		On("GetSeasonRecord", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(501), "2024").
		Return(average.SeasonRecord{}, false, nil).
		Maybe()
	deps.gameLogRepo.
		On("ListStatLines", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(501), gamelog.PeriodRegular).
		Return(nil, nil).
		Maybe()

	rec := serve(t, deps.router, "/v1/sports/nrl/players/501/stats?season=2024&period=Regular&window=5")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("did not expect partial data in failed response")
	}
	if got := decodeError(t, rec).Errors[0].Reason; got != "dataSourceError" {
		t.Fatalf("unexpected reason: %q", got)
	}
}

func TestHandler_ListOpponents(t *testing.T) {
	deps := newTestDeps(t)

	deps.gameLogRepo.
		On("ListOpponentTeamIDs", mock.Anything, mock.AnythingOfType("sport.Sport"), int64(23)).
		Return([]int64{9, 4, 9, 0}, nil).
		Once()
	deps.teamRepo.
		On("ListByIDs", mock.Anything, mock.AnythingOfType("sport.Sport"), []int64{4, 9}).
		Return([]team.Team{{ID: 9, Name: "Celtics"}, {ID: 4, Name: "Bulls"}}, nil).
		Once()

	rec := serve(t, deps.router, "/v1/sports/nba/players/23/opponents")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []opponentDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0].Name != "Bulls" || body.Data[1].Name != "Celtics" {
		t.Fatalf("unexpected opponents: %+v", body.Data)
	}
}

func TestHandler_ListPlayersAndGames(t *testing.T) {
	deps := newTestDeps(t)

	deps.playerRepo.
		On("ListBySport", mock.Anything, mock.AnythingOfType("sport.Sport")).
		Return([]player.Player{{ID: 2, FullName: "Anthony Davis"}, {ID: 1, FullName: "LeBron James"}}, nil).
		Once()
	deps.gameRepo.
		On("ListBySport", mock.Anything, mock.AnythingOfType("sport.Sport")).
		Return([]game.Game{{ID: 77, GameDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Season: "2024", Period: "Playoff", HomeScore: 101, AwayScore: 99}}, nil).
		Once()

	rec := serve(t, deps.router, "/v1/sports/nba/players")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var players struct {
		Data []playerDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("unmarshal players: %v", err)
	}
	if len(players.Data) != 2 || players.Data[0].PlayerID != 2 {
		t.Fatalf("unexpected players: %+v", players.Data)
	}

	rec = serve(t, deps.router, "/v1/sports/nba/games")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var games struct {
		Data []gameDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &games); err != nil {
		t.Fatalf("unmarshal games: %v", err)
	}
	if len(games.Data) != 1 || games.Data[0].GameDate != "2024-05-01" || games.Data[0].SeasonType != "Playoff" {
		t.Fatalf("unexpected games: %+v", games.Data)
	}
}

func TestHandler_ListGameLogs(t *testing.T) {
	deps := newTestDeps(t)

	deps.gameLogRepo.
		On("List", mock.Anything, mock.AnythingOfType("sport.Sport"), gamelog.ListQuery{PlayerID: 12, Season: "2023"}).
		Return([]gamelog.GameLog{{GameDate: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), Points: 21}}, nil).
		Once()

	rec := serve(t, deps.router, "/v1/sports/afl/gamelogs?playerId=12&season=2023")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = serve(t, deps.router, "/v1/sports/afl/gamelogs?season=2023")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without playerId, got %d", rec.Code)
	}
}

func TestHandler_ListSportsAndHealth(t *testing.T) {
	deps := newTestDeps(t)

	rec := serve(t, deps.router, "/v1/sports")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Data []sportDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal sports: %v", err)
	}
	if len(body.Data) != 4 || body.Data[0].Key != "afl" {
		t.Fatalf("unexpected sports: %+v", body.Data)
	}

	rec = serve(t, deps.router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id header")
	}
}

func TestRequestID_PropagatesCallerValue(t *testing.T) {
	deps := newTestDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "req-123" {
		t.Fatalf("unexpected request id: %q", got)
	}
}
