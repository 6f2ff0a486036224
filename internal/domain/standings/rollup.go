package standings

import (
	"cmp"
	"slices"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

// Line is one player's counters for a single period.
type Line struct {
	PlayerID string
	Name     string
	Position string
	Counters stats.Counters
}

// Rollup holds per-year snapshots and derived career totals keyed by player ID.
type Rollup struct {
	Yearly map[string]map[string]Line
	Career map[string]Line
}

// Period returns the lines of a year, or the career lines for stats.CareerPeriod.
func (r Rollup) Period(period string) (map[string]Line, bool) {
	if period == stats.CareerPeriod {
		return r.Career, true
	}
	lines, ok := r.Yearly[period]
	return lines, ok
}

// BuildRollup assigns each player's current counters to the latest supported
// year and each history snapshot to its own year. Career totals are the sum of
// all of them. Every line carries the player's current canonical position.
// A history snapshot for the latest year or for an unsupported year is ignored.
func BuildRollup(players []player.Player, years stats.Years) Rollup {
	out := Rollup{
		Yearly: make(map[string]map[string]Line, len(years)),
		Career: make(map[string]Line),
	}
	for _, year := range years {
		out.Yearly[year] = make(map[string]Line)
	}

	latest := years.Latest()
	if latest == "" {
		return out
	}

	for _, p := range players {
		key := RollupKey(p)
		if key == "" {
			continue
		}
		position := NormalizePosition(p.Position)
		line := func(c stats.Counters) Line {
			return Line{PlayerID: key, Name: p.Name, Position: position, Counters: c}
		}

		snapshots := make([]stats.Counters, 0, len(p.History)+1)
		out.Yearly[latest][key] = line(p.Current)
		snapshots = append(snapshots, p.Current)

		for _, year := range years {
			if year == latest {
				continue
			}
			snapshot, ok := p.History[year]
			if !ok {
				continue
			}
			out.Yearly[year][key] = line(snapshot)
			snapshots = append(snapshots, snapshot)
		}

		var career stats.Counters
		for _, s := range snapshots {
			career = career.Add(s)
		}
		career.WinRate = stats.WeightedWinRate(snapshots)
		out.Career[key] = line(career)
	}

	return out
}

// RollupKey is the key a player's lines are stored under: the ID, or the
// normalized name for records without one.
func RollupKey(p player.Player) string {
	if id := strings.TrimSpace(p.ID); id != "" {
		return id
	}
	if name := player.NameKey(p.Name); name != "" {
		return "name:" + name
	}
	return ""
}

// StatEntries projects lines onto one stat. Entries are ordered by name and
// then key so that ties keep a reproducible order through the stable sort.
func StatEntries(lines map[string]Line, key stats.StatKey) []Entry {
	sorted := make([]Line, 0, len(lines))
	for _, l := range lines {
		sorted = append(sorted, l)
	}
	slices.SortFunc(sorted, func(a, b Line) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	out := make([]Entry, 0, len(sorted))
	for _, l := range sorted {
		out = append(out, Entry{Key: l.PlayerID, Score: key.Value(l.Counters)})
	}
	return out
}
