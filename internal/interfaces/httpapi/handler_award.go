package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/club-stats/internal/usecase"
)

func (h *Handler) GetAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAward")
	defer span.End()

	yearMonth := strings.TrimSpace(r.PathValue("yearMonth"))
	item, err := h.awardService.Get(ctx, yearMonth)
	if err != nil {
		h.logger.WarnContext(ctx, "get award failed", "year_month", yearMonth, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awardToDTO(item))
}

func (h *Handler) ListAwardCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAwardCandidates")
	defer span.End()

	yearMonth := strings.TrimSpace(r.PathValue("yearMonth"))
	limit, err := parseOptionalInt("limit", r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if limit < 0 {
		writeError(ctx, w, fmt.Errorf("%w: limit must be >= 0", usecase.ErrInvalidInput))
		return
	}

	items, err := h.awardService.Candidates(ctx, yearMonth, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list award candidates failed", "year_month", yearMonth, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, candidatesToDTO(items))
}

func (h *Handler) AssignAwardSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignAwardSlot")
	defer span.End()

	yearMonth := strings.TrimSpace(r.PathValue("yearMonth"))
	var req slotRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, slot, err := h.awardService.Assign(ctx, yearMonth, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "assign award slot failed", "year_month", yearMonth, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, slotMutationDTO{Award: awardToDTO(item), Slot: slot})
}

func (h *Handler) AppendAwardSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendAwardSlot")
	defer span.End()

	yearMonth := strings.TrimSpace(r.PathValue("yearMonth"))
	var req slotRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, slot, err := h.awardService.AppendSlot(ctx, yearMonth, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "append award slot failed", "year_month", yearMonth, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, slotMutationDTO{Award: awardToDTO(item), Slot: slot})
}

func (h *Handler) ClearAwardSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearAwardSlot")
	defer span.End()

	yearMonth := strings.TrimSpace(r.PathValue("yearMonth"))
	index, err := strconv.Atoi(strings.TrimSpace(r.PathValue("index")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: slot index must be an integer", usecase.ErrInvalidInput))
		return
	}

	item, err := h.awardService.ClearSlot(ctx, yearMonth, index)
	if err != nil {
		h.logger.WarnContext(ctx, "clear award slot failed", "year_month", yearMonth, "index", index, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awardToDTO(item))
}
