package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/club-stats/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	query := r.URL.Query()
	limit, err := parseOptionalInt("limit", query.Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := leaderboardQueryDTO{
		Period: strings.TrimSpace(query.Get("period")),
		Stat:   strings.TrimSpace(query.Get("stat")),
		Limit:  limit,
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

	board, err := h.leaderboardService.Leaderboard(ctx, usecase.LeaderboardQuery{
		Period: req.Period,
		Stat:   stat,
		Limit:  req.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "period", req.Period, "stat", req.Stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

// GetLeaderboardBoard returns every ranked stat for every period.
func (h *Handler) GetLeaderboardBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardBoard")
	defer span.End()

	boards, err := h.leaderboardService.Board(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"periods":    h.leaderboardService.Periods(),
		"rankedKeys": h.leaderboardService.RankedKeys(),
		"boards":     boards,
	})
}
