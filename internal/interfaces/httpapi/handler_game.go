package httpapi

import (
	"net/http"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	sp, err := h.catalog.Resolve(r.PathValue("sport"), sport.FeatureGames)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.gameService.ListGames(ctx, sp)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "sport", sp.Key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(games))
}
