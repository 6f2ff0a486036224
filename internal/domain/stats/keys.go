package stats

import (
	"fmt"
	"strings"
)

// StatKey names one rankable counter.
type StatKey string

const (
	StatGoals          StatKey = "goals"
	StatAssists        StatKey = "assists"
	StatCleanSheets    StatKey = "cleanSheets"
	StatMatches        StatKey = "matches"
	StatMomScore       StatKey = "momScore"
	StatPersonalPoints StatKey = "personalPoints"
)

var allStatKeys = []StatKey{
	StatGoals,
	StatAssists,
	StatCleanSheets,
	StatMatches,
	StatMomScore,
	StatPersonalPoints,
}

// DefaultRankedKeys returns the stats ranked on the public leaderboards.
func DefaultRankedKeys() []StatKey {
	out := make([]StatKey, len(allStatKeys))
	copy(out, allStatKeys)
	return out
}

// ParseStatKey resolves a key case-insensitively.
func ParseStatKey(raw string) (StatKey, error) {
	value := strings.TrimSpace(raw)
	for _, key := range allStatKeys {
		if strings.EqualFold(string(key), value) {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown stat key %q", raw)
}

// ParseStatKeys parses a CSV list, rejecting unknown and duplicate keys.
func ParseStatKeys(raw string) ([]StatKey, error) {
	parts := strings.Split(raw, ",")
	out := make([]StatKey, 0, len(parts))
	seen := make(map[StatKey]struct{}, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, err := ParseStatKey(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate stat key %q", key)
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one stat key is required")
	}
	return out, nil
}

// Value reads the counter named by k.
func (k StatKey) Value(c Counters) float64 {
	switch k {
	case StatGoals:
		return float64(c.Goals)
	case StatAssists:
		return float64(c.Assists)
	case StatCleanSheets:
		return float64(c.CleanSheets)
	case StatMatches:
		return float64(c.Matches)
	case StatMomScore:
		return c.MomScore
	case StatPersonalPoints:
		return c.PersonalPoints
	default:
		return 0
	}
}

// MatchDerived reports whether the aggregator can compute k from match records.
func (k StatKey) MatchDerived() bool {
	switch k {
	case StatGoals, StatAssists, StatCleanSheets, StatMatches:
		return true
	default:
		return false
	}
}
