package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const maxRequestBodyBytes = 1 << 16

type Handler struct {
	leaderboardService   *usecase.LeaderboardService
	playerService        *usecase.PlayerService
	matchStandingService *usecase.MatchStandingService
	awardService         *usecase.AwardService
	logger               *logging.Logger
	validator            *validator.Validate
}

func NewHandler(
	leaderboardService *usecase.LeaderboardService,
	playerService *usecase.PlayerService,
	matchStandingService *usecase.MatchStandingService,
	awardService *usecase.AwardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leaderboardService:   leaderboardService,
		playerService:        playerService,
		matchStandingService: matchStandingService,
		awardService:         awardService,
		logger:               logger.Named("httpapi.handler"),
		validator:            validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseStat(raw string) (stats.StatKey, error) {
	key, err := stats.ParseStatKey(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return key, nil
}

// parseOptionalInt reads an integer query value, treating blank as zero.
func parseOptionalInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
