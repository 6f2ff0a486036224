package standings

// Shortlist takes the first n entries of a score-descending list and extends
// the cut to every following entry tied with the nth score. Ties at the
// boundary are never split, so the result can be longer than n.
func Shortlist(sorted []Entry, n int) []Entry {
	return shortlistBy(sorted, n, func(e Entry) float64 { return e.Score })
}

// TopRanked applies the Shortlist rule to an already ranked list.
func TopRanked(ranked []Ranked, n int) []Ranked {
	return shortlistBy(ranked, n, func(r Ranked) float64 { return r.Score })
}

func shortlistBy[T any](sorted []T, n int, score func(T) float64) []T {
	if len(sorted) == 0 || n <= 0 {
		return []T{}
	}
	if n >= len(sorted) {
		out := make([]T, len(sorted))
		copy(out, sorted)
		return out
	}

	cut := n
	boundary := score(sorted[n-1])
	for cut < len(sorted) && score(sorted[cut]) == boundary {
		cut++
	}

	out := make([]T, cut)
	copy(out, sorted[:cut])
	return out
}
