package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func logSkipped(ctx context.Context, logger *logging.Logger, skipped []standings.MalformedEntry) {
	for _, entry := range skipped {
		logger.WarnContext(ctx, "skipped malformed match entry",
			"match_id", entry.MatchID,
			"quarter", entry.Quarter,
			"reason", entry.Reason,
		)
	}
}

// sortedTallyKeys orders tally keys by display name so equal scores keep a
// reproducible order through the stable rank sort.
func sortedTallyKeys(agg standings.Aggregation) []string {
	keys := agg.Keys()
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(agg.Tallies[a].Name, agg.Tallies[b].Name); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return keys
}
