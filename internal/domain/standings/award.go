package standings

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

// AwardWeights converts a month's match counters into a candidate score.
type AwardWeights struct {
	Goal       float64
	Assist     float64
	CleanSheet float64
	Appearance float64
}

func DefaultAwardWeights() AwardWeights {
	return AwardWeights{Goal: 1, Assist: 1, CleanSheet: 1}
}

func (w AwardWeights) Score(c stats.Counters) float64 {
	return w.Goal*float64(c.Goals) +
		w.Assist*float64(c.Assists) +
		w.CleanSheet*float64(c.CleanSheets) +
		w.Appearance*float64(c.Matches)
}

// AwardCandidate is a player considered for a monthly award.
type AwardCandidate struct {
	Name     string
	Score    float64
	Stats    stats.Counters
	Position string
}

// ScoreCandidates scores every tally with w and returns candidates ordered by
// score descending, ties by name.
func ScoreCandidates(agg Aggregation, w AwardWeights) []AwardCandidate {
	out := make([]AwardCandidate, 0, len(agg.Tallies))
	for _, key := range agg.Keys() {
		t := agg.Tallies[key]
		out = append(out, AwardCandidate{
			Name:     t.Name,
			Score:    w.Score(t.Counters),
			Stats:    t.Counters,
			Position: ResolvePosition(t.Positions, ""),
		})
	}

	slices.SortFunc(out, func(a, b AwardCandidate) int {
		return cmp.Compare(a.Name, b.Name)
	})
	slices.SortStableFunc(out, func(a, b AwardCandidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// ShortlistCandidates applies the boundary-tie Shortlist rule to sorted candidates.
func ShortlistCandidates(sorted []AwardCandidate, n int) []AwardCandidate {
	return shortlistBy(sorted, n, func(c AwardCandidate) float64 { return c.Score })
}
