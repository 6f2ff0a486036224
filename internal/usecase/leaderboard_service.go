package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

const defaultBoardWorkers = 4

type LeaderboardQuery struct {
	Period string
	Stat   stats.StatKey
	// Limit keeps the top-N rows plus anyone tied at the boundary. Zero keeps all.
	Limit int
}

type LeaderboardRow struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Score    float64 `json:"score"`
	Period   string  `json:"period"`
}

type Leaderboard struct {
	Period string           `json:"period"`
	Stat   stats.StatKey    `json:"stat"`
	Rows   []LeaderboardRow `json:"rows"`
}

type LeaderboardService struct {
	playerRepo player.Repository
	years      stats.Years
	rankedKeys []stats.StatKey
	workers    int
	logger     *logging.Logger
}

func NewLeaderboardService(playerRepo player.Repository, years stats.Years, rankedKeys []stats.StatKey, logger *logging.Logger) *LeaderboardService {
	if len(rankedKeys) == 0 {
		rankedKeys = stats.DefaultRankedKeys()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		playerRepo: playerRepo,
		years:      years,
		rankedKeys: rankedKeys,
		workers:    defaultBoardWorkers,
		logger:     logger.Named("usecase.leaderboard"),
	}
}

func (s *LeaderboardService) Periods() []string {
	return s.years.Periods()
}

func (s *LeaderboardService) RankedKeys() []stats.StatKey {
	return slices.Clone(s.rankedKeys)
}

// Leaderboard ranks one stat within one period. Zero scores are left out.
func (s *LeaderboardService) Leaderboard(ctx context.Context, q LeaderboardQuery) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Leaderboard")
	defer span.End()

	q.Period = strings.ToLower(strings.TrimSpace(q.Period))
	if err := s.validateQuery(q); err != nil {
		return Leaderboard{}, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return Leaderboard{}, unavailable("list players", err)
	}

	rollup := standings.BuildRollup(players, s.years)
	return buildLeaderboard(rollup, q), nil
}

// Board computes every (period, stat) leaderboard from one player read.
// Boards are ordered by period, then by ranked stat.
func (s *LeaderboardService) Board(ctx context.Context) ([]Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Board")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, unavailable("list players", err)
	}
	rollup := standings.BuildRollup(players, s.years)

	periods := s.years.Periods()
	out := make([]Leaderboard, len(periods)*len(s.rankedKeys))
	if len(out) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(out)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for pi, period := range periods {
		for ki, key := range s.rankedKeys {
			idx := pi*len(s.rankedKeys) + ki
			query := LeaderboardQuery{Period: period, Stat: key}
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				out[idx] = buildLeaderboard(rollup, query)
			}); err != nil {
				wg.Done()
				wg.Wait()
				return nil, fmt.Errorf("submit board task: %w", err)
			}
		}
	}
	wg.Wait()

	s.logger.DebugContext(ctx, "built leaderboard board", "players", len(players), "boards", len(out))
	return out, nil
}

func (s *LeaderboardService) validateQuery(q LeaderboardQuery) error {
	if !s.years.ValidPeriod(q.Period) {
		return fmt.Errorf("%w: unsupported period %q", ErrInvalidInput, q.Period)
	}
	if !slices.Contains(s.rankedKeys, q.Stat) {
		return fmt.Errorf("%w: stat %q is not ranked", ErrInvalidInput, q.Stat)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	return nil
}

func buildLeaderboard(rollup standings.Rollup, q LeaderboardQuery) Leaderboard {
	board := Leaderboard{Period: q.Period, Stat: q.Stat, Rows: []LeaderboardRow{}}

	lines, ok := rollup.Period(q.Period)
	if !ok || len(lines) == 0 {
		return board
	}

	ranked := standings.Rank(standings.StatEntries(lines, q.Stat), standings.RankOptions{
		ExcludeZero: true,
		Period:      q.Period,
	})
	if q.Limit > 0 {
		ranked = standings.TopRanked(ranked, q.Limit)
	}

	board.Rows = make([]LeaderboardRow, 0, len(ranked))
	for _, r := range ranked {
		line := lines[r.Key]
		board.Rows = append(board.Rows, LeaderboardRow{
			Rank:     r.Rank,
			PlayerID: line.PlayerID,
			Name:     line.Name,
			Position: line.Position,
			Score:    r.Score,
			Period:   r.Period,
		})
	}
	return board
}
