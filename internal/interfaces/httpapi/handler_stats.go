package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/propchart-api/internal/domain/gamelog"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

type statsQueryRequest struct {
	Season string `validate:"required,max=32"`
	Period string `validate:"required"`
	Window string `validate:"required,number"`
	Team   string `validate:"omitempty,max=32"`
}

type gameLogListRequest struct {
	PlayerID string `validate:"required,number"`
	Season   string `validate:"omitempty,max=32"`
	Period   string `validate:"omitempty"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats", attribute.String("sport", r.PathValue("sport")))
	defer span.End()

	query := r.URL.Query()
	req := statsQueryRequest{
		Season: strings.TrimSpace(query.Get("season")),
		Period: strings.TrimSpace(query.Get("period")),
		Window: strings.TrimSpace(query.Get("window")),
		Team:   strings.TrimSpace(query.Get("team")),
	}
	if req.Team == "" {
		req.Team = "all"
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	period, err := gamelog.ParsePeriod(req.Period)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	window, err := strconv.Atoi(req.Window)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid window %q", usecase.ErrInvalidInput, req.Window))
		return
	}
	opponentID, err := parseTeamFilter(req.Team)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sp, err := h.catalog.Lookup(r.PathValue("sport"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.Aggregate(ctx, sp, usecase.StatsQuery{
		PlayerID:   playerID,
		Season:     req.Season,
		Period:     period,
		OpponentID: opponentID,
		WindowSize: window,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "aggregate stats failed",
			"sport", sp.Key,
			"player_id", playerID,
			"season", req.Season,
			"period", period,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

func (h *Handler) ListGameLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameLogs", attribute.String("sport", r.PathValue("sport")))
	defer span.End()

	query := r.URL.Query()
	req := gameLogListRequest{
		PlayerID: strings.TrimSpace(query.Get("playerId")),
		Season:   strings.TrimSpace(query.Get("season")),
		Period:   strings.TrimSpace(query.Get("period")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID, err := parsePlayerID(req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var period gamelog.Period
	if req.Period != "" {
		period, err = gamelog.ParsePeriod(req.Period)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	sp, err := h.catalog.Resolve(r.PathValue("sport"), sport.FeatureGameLogs)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logs, err := h.gameLogService.List(ctx, sp, gamelog.ListQuery{
		PlayerID: playerID,
		Season:   req.Season,
		Period:   period,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list game logs failed", "sport", sp.Key, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameLogsToDTO(logs))
}
