package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetMatchStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStandings")
	defer span.End()

	query := r.URL.Query()
	req := matchStandingsQueryDTO{
		Period: strings.TrimSpace(query.Get("period")),
		Stat:   strings.TrimSpace(query.Get("stat")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	stat, err := parseStat(req.Stat)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchStandingService.Standings(ctx, req.Period, stat)
	if err != nil {
		h.logger.WarnContext(ctx, "get match standings failed", "period", req.Period, "stat", req.Stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
