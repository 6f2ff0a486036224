package standings

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

// Tally accumulates one player's match-derived counters.
type Tally struct {
	// Name is the display name as first seen in the scanned matches.
	Name      string
	Counters  stats.Counters
	Positions *PositionHistogram
}

// MalformedEntry describes a sub-entry the aggregator skipped.
type MalformedEntry struct {
	MatchID string
	Quarter int
	Reason  string
}

func (e MalformedEntry) Error() string {
	return fmt.Sprintf("%s: match=%s quarter=%d: %s", ErrMalformedRecord, e.MatchID, e.Quarter, e.Reason)
}

func (e MalformedEntry) Unwrap() error {
	return ErrMalformedRecord
}

// AggregateFilter restricts which matches are scanned. Years is the supported
// range; Year and YearMonth ("YYYY-MM") narrow it further when set.
type AggregateFilter struct {
	Years     stats.Years
	Year      string
	YearMonth string
}

func (f AggregateFilter) accepts(m match.Match) bool {
	year := m.Year()
	if !f.Years.Contains(year) {
		return false
	}
	if f.Year != "" && year != f.Year {
		return false
	}
	if f.YearMonth != "" && m.YearMonth() != f.YearMonth {
		return false
	}
	return true
}

// Aggregation is the result of one scan. Tallies are keyed by player.NameKey.
type Aggregation struct {
	Tallies map[string]*Tally
	Skipped []MalformedEntry
	order   []string
}

// Keys returns tally keys in first-seen order.
func (a Aggregation) Keys() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

func (a *Aggregation) tally(key, displayName string) *Tally {
	t, ok := a.Tallies[key]
	if !ok {
		t = &Tally{Name: strings.TrimSpace(displayName), Positions: NewPositionHistogram()}
		a.Tallies[key] = t
		a.order = append(a.order, key)
	}
	return t
}

func (a *Aggregation) skip(matchID string, quarter int, reason string) {
	a.Skipped = append(a.Skipped, MalformedEntry{MatchID: matchID, Quarter: quarter, Reason: reason})
}

type quarterAppearance struct {
	key      string
	name     string
	team     string
	position string
}

// Aggregate scans matches and counts, per player, quarters played, goals,
// assists and clean sheets. A player listed in a quarter's roster played that
// quarter; matches therefore count quarter appearances. Malformed sub-entries
// are recorded in Skipped and never abort the scan.
func Aggregate(matches []match.Match, filter AggregateFilter) Aggregation {
	agg := Aggregation{Tallies: make(map[string]*Tally)}

	for _, m := range matches {
		if !filter.accepts(m) {
			continue
		}
		for qi, q := range m.Quarters {
			aggregateQuarter(&agg, m.ID, qi, q)
		}
	}

	return agg
}

func aggregateQuarter(agg *Aggregation, matchID string, qi int, q match.Quarter) {
	played := make([]quarterAppearance, 0, 16)
	teamOf := make(map[string]string)
	for _, sheet := range q.Teams {
		teamKey := match.TeamKey(sheet.Name)
		for _, app := range sheet.Players {
			key := player.NameKey(app.Name)
			if key == "" {
				agg.skip(matchID, qi, "roster entry without player name")
				continue
			}
			if _, seen := teamOf[key]; seen {
				continue
			}
			teamOf[key] = teamKey
			played = append(played, quarterAppearance{
				key:      key,
				name:     app.Name,
				team:     teamKey,
				position: NormalizePosition(strings.TrimSpace(app.Position)),
			})
		}
	}

	goalsByTeam := make(map[string]int)
	for _, pair := range q.GoalAssistPairs {
		scorerKey := player.NameKey(pair.Goal.Player)
		teamKey := match.TeamKey(pair.Goal.Team)
		if teamKey == "" && scorerKey != "" {
			teamKey = teamOf[scorerKey]
		}
		if teamKey != "" {
			goalsByTeam[teamKey]++
		}

		if scorerKey == "" {
			agg.skip(matchID, qi, "goal without scorer")
			continue
		}
		agg.tally(scorerKey, pair.Goal.Player).Counters.Goals++

		if pair.Assist == nil {
			continue
		}
		assistKey := player.NameKey(pair.Assist.Player)
		if assistKey == "" {
			continue
		}
		agg.tally(assistKey, pair.Assist.Player).Counters.Assists++
	}

	ownGoalsAgainst := make(map[string]int)
	for _, og := range q.OwnGoals {
		teamKey := match.TeamKey(og.Team)
		if teamKey == "" {
			agg.skip(matchID, qi, "own goal without team")
			continue
		}
		ownGoalsAgainst[teamKey]++
	}

	for _, app := range played {
		t := agg.tally(app.key, app.name)
		t.Counters.Matches++
		t.Positions.Add(app.position)

		if !IsCleanSheetPosition(app.position) {
			continue
		}
		if concededIn(app.team, goalsByTeam, ownGoalsAgainst) == 0 {
			t.Counters.CleanSheets++
		}
	}
}

// concededIn counts goals scored by every other team plus own goals charged
// against team.
func concededIn(team string, goalsByTeam, ownGoalsAgainst map[string]int) int {
	conceded := ownGoalsAgainst[team]
	for scorer, goals := range goalsByTeam {
		if scorer != team {
			conceded += goals
		}
	}
	return conceded
}

// AggregateByYear runs Aggregate once per supported year.
func AggregateByYear(matches []match.Match, years stats.Years) map[string]Aggregation {
	out := make(map[string]Aggregation, len(years))
	for _, year := range years {
		out[year] = Aggregate(matches, AggregateFilter{Years: years, Year: year})
	}
	return out
}
