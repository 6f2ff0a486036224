package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
)

// Snapshot is one consistent read of every record the ranking core needs.
type Snapshot struct {
	Players []player.Player
	Matches []match.Match
}

// SnapshotLoader reads players and matches concurrently.
type SnapshotLoader struct {
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewSnapshotLoader(playerRepo player.Repository, matchRepo match.Repository) *SnapshotLoader {
	return &SnapshotLoader{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

// Load fails as a whole when either read fails; the first failure cancels the other.
func (l *SnapshotLoader) Load(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotLoader.Load")
	defer span.End()

	var snap Snapshot
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		players, err := l.playerRepo.List(ctx)
		if err != nil {
			return unavailable("list players", err)
		}
		snap.Players = players
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := l.matchRepo.List(ctx)
		if err != nil {
			return unavailable("list matches", err)
		}
		snap.Matches = matches
		return nil
	})
	if err := p.Wait(); err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}
