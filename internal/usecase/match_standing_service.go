package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

type MatchStandingRow struct {
	Rank     int            `json:"rank"`
	Name     string         `json:"name"`
	Position string         `json:"position"`
	Score    float64        `json:"score"`
	Stats    stats.Counters `json:"stats"`
}

type MatchStandings struct {
	Period string             `json:"period"`
	Stat   stats.StatKey      `json:"stat"`
	Rows   []MatchStandingRow `json:"rows"`
	// Skipped counts malformed quarter entries left out of the tally.
	Skipped int `json:"skipped"`
}

// MatchStandingService ranks counters derived from raw match records rather
// than from the stored player snapshots.
type MatchStandingService struct {
	loader *SnapshotLoader
	years  stats.Years
	logger *logging.Logger
}

func NewMatchStandingService(loader *SnapshotLoader, years stats.Years, logger *logging.Logger) *MatchStandingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchStandingService{
		loader: loader,
		years:  years,
		logger: logger.Named("usecase.match_standing"),
	}
}

func (s *MatchStandingService) Standings(ctx context.Context, period string, stat stats.StatKey) (MatchStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStandingService.Standings")
	defer span.End()

	period = strings.ToLower(strings.TrimSpace(period))
	if !s.years.ValidPeriod(period) {
		return MatchStandings{}, fmt.Errorf("%w: unsupported period %q", ErrInvalidInput, period)
	}
	if !stat.MatchDerived() {
		return MatchStandings{}, fmt.Errorf("%w: stat %q cannot be derived from matches", ErrInvalidInput, stat)
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return MatchStandings{}, err
	}

	filter := standings.AggregateFilter{Years: s.years}
	if period != stats.CareerPeriod {
		filter.Year = period
	}
	agg := standings.Aggregate(snap.Matches, filter)
	logSkipped(ctx, s.logger, agg.Skipped)

	fallback := storedPositions(snap.Players)
	entries := make([]standings.Entry, 0, len(agg.Tallies))
	for _, key := range sortedTallyKeys(agg) {
		entries = append(entries, standings.Entry{Key: key, Score: stat.Value(agg.Tallies[key].Counters)})
	}
	ranked := standings.Rank(entries, standings.RankOptions{ExcludeZero: true, Period: period})

	out := MatchStandings{
		Period:  period,
		Stat:    stat,
		Rows:    make([]MatchStandingRow, 0, len(ranked)),
		Skipped: len(agg.Skipped),
	}
	for _, r := range ranked {
		tally := agg.Tallies[r.Key]
		out.Rows = append(out.Rows, MatchStandingRow{
			Rank:     r.Rank,
			Name:     tally.Name,
			Position: standings.ResolvePosition(tally.Positions, fallback[r.Key]),
			Score:    r.Score,
			Stats:    tally.Counters,
		})
	}
	return out, nil
}

// storedPositions maps name keys to the canonical stored position. Duplicate
// names resolve to the last record.
func storedPositions(players []player.Player) map[string]string {
	out := make(map[string]string, len(players))
	for _, p := range players {
		if key := player.NameKey(p.Name); key != "" {
			out[key] = standings.NormalizePosition(p.Position)
		}
	}
	return out
}
