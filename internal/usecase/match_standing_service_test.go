package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

func newTestMatchStandingService(players []player.Player) *MatchStandingService {
	loader := NewSnapshotLoader(&stubPlayerRepository{items: players}, &stubMatchRepository{items: testMatches()})
	return NewMatchStandingService(loader, testYears(), nil)
}

func TestMatchStandingService_Standings_Goals(t *testing.T) {
	t.Parallel()

	service := newTestMatchStandingService(testPlayers())
	got, err := service.Standings(context.Background(), stats.CareerPeriod, stats.StatGoals)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}

	if len(got.Rows) != 2 {
		t.Fatalf("expected two scorers, got %+v", got.Rows)
	}
	if got.Rows[0].Name != "Ari" || got.Rows[1].Name != "Budi Santoso" {
		t.Fatalf("unexpected order: %+v", got.Rows)
	}
	if got.Rows[0].Rank != 1 || got.Rows[1].Rank != 1 {
		t.Fatalf("expected shared rank: %+v", got.Rows)
	}
	if got.Skipped != 1 {
		t.Fatalf("expected one skipped goal, got %d", got.Skipped)
	}
}

func TestMatchStandingService_Standings_PositionsAndCleanSheets(t *testing.T) {
	t.Parallel()

	players := append(testPlayers(), player.Player{ID: "p-eko", Name: "Eko", Position: "LB1"})
	service := newTestMatchStandingService(players)
	ctx := context.Background()

	appearances, err := service.Standings(ctx, stats.CareerPeriod, stats.StatMatches)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(appearances.Rows) != 5 {
		t.Fatalf("unexpected rows: %+v", appearances.Rows)
	}
	last := appearances.Rows[4]
	if last.Name != "Eko" || last.Rank != 5 || last.Position != "LB" {
		t.Fatalf("expected Eko with stored fallback position, got %+v", last)
	}
	for _, row := range appearances.Rows[:4] {
		if row.Rank != 1 || row.Score != 2 {
			t.Fatalf("unexpected appearance row: %+v", row)
		}
	}

	cleanSheets, err := service.Standings(ctx, "2025", stats.StatCleanSheets)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(cleanSheets.Rows) != 2 {
		t.Fatalf("unexpected clean sheet rows: %+v", cleanSheets.Rows)
	}
	if cleanSheets.Rows[0].Name != "Cahya" || cleanSheets.Rows[0].Position != "CB" {
		t.Fatalf("unexpected first clean sheet row: %+v", cleanSheets.Rows[0])
	}
	if cleanSheets.Rows[1].Name != "Gio" || cleanSheets.Rows[1].Position != "GK" {
		t.Fatalf("unexpected second clean sheet row: %+v", cleanSheets.Rows[1])
	}
}

func TestMatchStandingService_Standings_EmptyYearAndInvalidInput(t *testing.T) {
	t.Parallel()

	service := newTestMatchStandingService(testPlayers())
	ctx := context.Background()

	empty, err := service.Standings(ctx, "2024", stats.StatGoals)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if empty.Rows == nil || len(empty.Rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %+v", empty.Rows)
	}

	if _, err := service.Standings(ctx, "2025", stats.StatMomScore); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a snapshot-only stat, got %v", err)
	}
	if _, err := service.Standings(ctx, "2019", stats.StatGoals); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unsupported period, got %v", err)
	}
}

func TestSnapshotLoader_FailsWhenEitherReadFails(t *testing.T) {
	t.Parallel()

	loader := NewSnapshotLoader(&stubPlayerRepository{items: testPlayers()}, &stubMatchRepository{err: errStubBackend})
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) || !errors.Is(err, errStubBackend) {
		t.Fatalf("expected dependency error, got %v", err)
	}

	ok := NewSnapshotLoader(&stubPlayerRepository{items: testPlayers()}, &stubMatchRepository{items: testMatches()})
	snap, err := ok.Load(context.Background())
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(snap.Players) != 3 || len(snap.Matches) != 2 {
		t.Fatalf("unexpected snapshot: players=%d matches=%d", len(snap.Players), len(snap.Matches))
	}
}
