package standings

import (
	"cmp"
	"slices"
)

// Entry is one scored entity before ranking.
type Entry struct {
	Key   string
	Score float64
}

// Ranked is an Entry with its competition rank within Period.
type Ranked struct {
	Key    string
	Score  float64
	Rank   int
	Period string
}

type RankOptions struct {
	// ExcludeZero drops zero scores before ranks are assigned. Leaderboards
	// set it; player lookups rank everyone.
	ExcludeZero bool
	Period      string
}

// SortEntries returns a copy of entries ordered by score descending. Equal
// scores keep their input order.
func SortEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// Rank assigns competition ranks (1,1,3,4,4,6...): equal scores share a rank
// and the next distinct score takes its 1-based position.
func Rank(entries []Entry, opts RankOptions) []Ranked {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if opts.ExcludeZero && e.Score == 0 {
			continue
		}
		filtered = append(filtered, e)
	}
	sorted := SortEntries(filtered)

	out := make([]Ranked, 0, len(sorted))
	for i, e := range sorted {
		rank := i + 1
		if i > 0 && e.Score == sorted[i-1].Score {
			rank = out[i-1].Rank
		}
		out = append(out, Ranked{
			Key:    e.Key,
			Score:  e.Score,
			Rank:   rank,
			Period: opts.Period,
		})
	}
	return out
}

// RankOf returns the ranked row for key, if present.
func RankOf(ranked []Ranked, key string) (Ranked, bool) {
	for _, r := range ranked {
		if r.Key == key {
			return r, true
		}
	}
	return Ranked{}, false
}
