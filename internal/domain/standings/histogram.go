package standings

import "strings"

// PositionHistogram counts position occurrences in insertion order, which
// makes the first-seen tie-break of ResolvePosition reproducible.
type PositionHistogram struct {
	order  []string
	counts map[string]int
}

func NewPositionHistogram() *PositionHistogram {
	return &PositionHistogram{counts: make(map[string]int)}
}

// Add records one occurrence. Blank positions are ignored.
func (h *PositionHistogram) Add(position string) {
	if strings.TrimSpace(position) == "" {
		return
	}
	if h.counts == nil {
		h.counts = make(map[string]int)
	}
	if _, ok := h.counts[position]; !ok {
		h.order = append(h.order, position)
	}
	h.counts[position]++
}

func (h *PositionHistogram) Count(position string) int {
	if h == nil {
		return 0
	}
	return h.counts[position]
}

func (h *PositionHistogram) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

// ResolvePosition returns the most frequent position in h. Ties go to the
// position seen first. An empty histogram resolves to fallback.
func ResolvePosition(h *PositionHistogram, fallback string) string {
	if h.Len() == 0 {
		return fallback
	}

	best := ""
	bestCount := 0
	for _, position := range h.order {
		if count := h.counts[position]; count > bestCount {
			best = position
			bestCount = count
		}
	}
	return best
}
