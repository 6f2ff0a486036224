package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

func TestPlayerService_Search_RanksIncludeZeros(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(&stubPlayerRepository{items: testPlayers()}, testYears(), nil)
	profile, err := service.Search(context.Background(), "  budi   SANTOSO ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if profile.Player.ID != "p-budi" {
		t.Fatalf("unexpected player: %+v", profile.Player)
	}

	keys := stats.DefaultRankedKeys()
	if len(profile.Ranks) != 3*len(keys) {
		t.Fatalf("expected ranks for 2024, 2025 and career only, got %d", len(profile.Ranks))
	}
	for _, r := range profile.Ranks {
		if r.Period == "2023" {
			t.Fatalf("player without a 2023 line must not be ranked in 2023: %+v", r)
		}
	}

	find := func(period string, stat stats.StatKey) PeriodRank {
		for _, r := range profile.Ranks {
			if r.Period == period && r.Stat == stat {
				return r
			}
		}
		t.Fatalf("missing rank for %s/%s", period, stat)
		return PeriodRank{}
	}

	if got := find("2025", stats.StatAssists); got.Rank != 2 || got.Of != 3 {
		t.Fatalf("unexpected 2025 assists rank: %+v", got)
	}
	if got := find("2025", stats.StatCleanSheets); got.Rank != 2 || got.Score != 0 {
		t.Fatalf("zero score must still be ranked: %+v", got)
	}
	if got := find("2024", stats.StatGoals); got.Rank != 1 || got.Of != 1 {
		t.Fatalf("unexpected 2024 goals rank: %+v", got)
	}
}

func TestPlayerService_FindByName_LastRecordWins(t *testing.T) {
	t.Parallel()

	items := append(testPlayers(),
		player.Player{ID: "p-dedi-1", Name: "Dedi"},
		player.Player{ID: "p-dedi-2", Name: "dedi "},
	)
	service := NewPlayerService(&stubPlayerRepository{items: items}, testYears(), nil)

	got, err := service.FindByName(context.Background(), "Dedi")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if got.ID != "p-dedi-2" {
		t.Fatalf("expected last matching record, got %s", got.ID)
	}
}

func TestPlayerService_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewPlayerService(&stubPlayerRepository{items: testPlayers()}, testYears(), nil)

	if _, err := service.Search(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Search(ctx, "Nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Get(ctx, "p-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	broken := NewPlayerService(&stubPlayerRepository{err: errStubBackend}, testYears(), nil)
	if _, err := broken.List(ctx); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestPlayerService_Get(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(&stubPlayerRepository{items: testPlayers()}, testYears(), nil)
	got, err := service.Get(context.Background(), " p-ari ")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != "Ari" {
		t.Fatalf("unexpected player: %+v", got)
	}
}
