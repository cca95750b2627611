package httpapi

import (
	"net/http"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	sp, err := h.catalog.Resolve(r.PathValue("sport"), sport.FeaturePlayers)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListPlayers(ctx, sp)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "sport", sp.Key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListOpponents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOpponents")
	defer span.End()

	sp, err := h.catalog.Resolve(r.PathValue("sport"), sport.FeatureOpponents)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	opponents, err := h.opponentService.ListOpponents(ctx, sp, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list opponents failed", "sport", sp.Key, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, opponentsToDTO(opponents))
}
