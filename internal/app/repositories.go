package app

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	cacherepo "github.com/riskibarqy/club-stats/internal/infrastructure/repository/cache"
	firestorerepo "github.com/riskibarqy/club-stats/internal/infrastructure/repository/firestore"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/club-stats/internal/platform/cache"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// Repositories is the data backend selected by DATA_BACKEND, optionally
// behind the read cache.
type Repositories struct {
	Players player.Repository
	Matches match.Repository
	Awards  award.Repository

	// Store is set only for the firestore backend.
	Store *firestorerepo.Store
}

func NewRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var repos Repositories
	switch cfg.DataBackend {
	case config.BackendFirestore:
		client, err := fs.NewClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, fmt.Errorf("create firestore client: %w", err)
		}
		store := firestorerepo.NewStore(client, firestorerepo.Options{
			Timeout: cfg.FirestoreTimeout,
			Circuit: cfg.FirestoreCircuit,
			Logger:  logger,
		})
		repos = Repositories{
			Players: firestorerepo.NewPlayerRepository(store),
			Matches: firestorerepo.NewMatchRepository(store),
			Awards:  firestorerepo.NewAwardRepository(store),
			Store:   store,
		}
	case config.BackendMemory, "":
		repos = Repositories{
			Players: memory.NewPlayerRepository(memory.SeedPlayers()),
			Matches: memory.NewMatchRepository(memory.SeedMatches()),
			Awards:  memory.NewAwardRepository(),
		}
	default:
		return nil, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.Players = cacherepo.NewPlayerRepository(repos.Players, store)
		repos.Matches = cacherepo.NewMatchRepository(repos.Matches, store)
		repos.Awards = cacherepo.NewAwardRepository(repos.Awards, store)
	}

	logger.Info("repositories ready",
		"backend", cfg.DataBackend,
		"cache_enabled", cfg.CacheEnabled,
	)
	return &repos, nil
}

func (r *Repositories) Close() error {
	if r == nil || r.Store == nil {
		return nil
	}
	return r.Store.Close()
}
