package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/club-stats/internal/platform/id"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

// Services bundles the usecase layer shared by the API and the CLI.
type Services struct {
	Leaderboards   *usecase.LeaderboardService
	Players        *usecase.PlayerService
	MatchStandings *usecase.MatchStandingService
	Awards         *usecase.AwardService
}

func NewServices(cfg config.Config, repos *Repositories, logger *logging.Logger) *Services {
	awardCfg := usecase.AwardConfig{
		ShortlistSize: cfg.AwardShortlistSize,
		SlotCount:     cfg.AwardSlotCount,
		MaxSlots:      cfg.AwardMaxSlots,
		Weights:       cfg.AwardWeights,
	}

	return &Services{
		Leaderboards:   usecase.NewLeaderboardService(repos.Players, cfg.Years, cfg.RankedKeys, logger),
		Players:        usecase.NewPlayerService(repos.Players, cfg.Years, cfg.RankedKeys),
		MatchStandings: usecase.NewMatchStandingService(usecase.NewSnapshotLoader(repos.Players, repos.Matches), cfg.Years, logger),
		Awards:         usecase.NewAwardService(repos.Matches, repos.Awards, id.NewUUIDGenerator(), cfg.Years, awardCfg, logger),
	}
}

// NewHTTPServer wires the configured backend into the JSON API. The returned
// close func releases backend clients.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := NewRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	svc := NewServices(cfg, repos, logger)

	handler := httpapi.NewHandler(svc.Leaderboards, svc.Players, svc.MatchStandings, svc.Awards, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminPassword)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.Close, nil
}
