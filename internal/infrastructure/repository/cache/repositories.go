package cache

import (
	"context"

	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	basecache "github.com/riskibarqy/club-stats/internal/platform/cache"
)

const (
	keyPlayerList   = "player:list"
	keyPlayerPrefix = "player:id:"
	keyMatchList    = "match:list"
	keyAwardPrefix  = "award:month:"
)

type cachedLookup[T any] struct {
	value  T
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, keyPlayerList, func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, keyPlayerPrefix+playerID, func(ctx context.Context) (cachedLookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return cachedLookup[player.Player]{}, err
		}
		return cachedLookup[player.Player]{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	items, err := basecache.Load(ctx, r.cache, keyMatchList, func(ctx context.Context) ([]match.Match, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Match(nil), items...), nil
}

// AwardRepository caches month lookups and drops the month's entry on Save.
type AwardRepository struct {
	next  award.Repository
	cache *basecache.Store
}

func NewAwardRepository(next award.Repository, cache *basecache.Store) *AwardRepository {
	return &AwardRepository{next: next, cache: cache}
}

func (r *AwardRepository) GetByYearMonth(ctx context.Context, yearMonth string) (award.MonthlyAward, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, keyAwardPrefix+yearMonth, func(ctx context.Context) (cachedLookup[award.MonthlyAward], error) {
		item, exists, err := r.next.GetByYearMonth(ctx, yearMonth)
		if err != nil {
			return cachedLookup[award.MonthlyAward]{}, err
		}
		return cachedLookup[award.MonthlyAward]{value: item, exists: exists}, nil
	})
	if err != nil {
		return award.MonthlyAward{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *AwardRepository) Save(ctx context.Context, item award.MonthlyAward) error {
	if err := r.next.Save(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, keyAwardPrefix+item.YearMonth)
	return nil
}
