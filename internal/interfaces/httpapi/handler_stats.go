package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	query := r.URL.Query()
	role := strings.TrimSpace(query.Get("role"))
	if role == "" {
		role = "batsmen"
	}
	format := strings.TrimSpace(query.Get("format"))
	if format == "" {
		format = "test"
	}

	view, err := h.playerStatsService.Rankings(ctx, role, format)
	if err != nil {
		h.logger.WarnContext(ctx, "get rankings failed", "role", role, "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingsToDTO(view))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	name := r.URL.Query().Get("name")
	view, err := h.playerStatsService.SearchPlayers(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSearchToDTO(view))
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := r.PathValue("playerID")
	view, err := h.playerStatsService.PlayerStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(view))
}
