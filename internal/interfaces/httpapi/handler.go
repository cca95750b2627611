package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/propchart-api/internal/platform/logging"
	"github.com/riskibarqy/propchart-api/internal/usecase"
)

type Handler struct {
	catalog         *usecase.SportCatalog
	playerService   *usecase.PlayerService
	opponentService *usecase.OpponentService
	statsService    *usecase.StatsService
	gameLogService  *usecase.GameLogService
	gameService     *usecase.GameService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	catalog *usecase.SportCatalog,
	playerService *usecase.PlayerService,
	opponentService *usecase.OpponentService,
	statsService *usecase.StatsService,
	gameLogService *usecase.GameLogService,
	gameService *usecase.GameService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalog:         catalog,
		playerService:   playerService,
		opponentService: opponentService,
		statsService:    statsService,
		gameLogService:  gameLogService,
		gameService:     gameService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	items := h.catalog.List()
	out := make([]sportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, sportToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePlayerID(raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, value)
	}
	return id, nil
}

// parseTeamFilter maps the opponent filter; "all" and "0" disable it.
func parseTeamFilter(raw string) (int64, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == "all" || value == "0" {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid team %q", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}
