package standings

import (
	"errors"
	"testing"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

func testFilter() AggregateFilter {
	return AggregateFilter{Years: stats.DefaultYears()}
}

func twoTeamQuarter(goals []match.GoalAssistPair, ownGoals []match.OwnGoal) match.Quarter {
	return match.Quarter{
		Teams: []match.TeamSheet{
			{
				Name: "Team A",
				Players: []match.Appearance{
					{Name: "Gio", Position: "GK"},
					{Name: "Ari", Position: "CM1"},
				},
			},
			{
				Name: "Team B",
				Players: []match.Appearance{
					{Name: "Budi", Position: "ST"},
					{Name: "Cahya", Position: "CB2"},
				},
			},
		},
		GoalAssistPairs: goals,
		OwnGoals:        ownGoals,
	}
}

func TestAggregate_CleanSheetDeniedWhenOpponentScores(t *testing.T) {
	m := match.Match{
		ID:   "m1",
		Date: "2024-03-02",
		Quarters: []match.Quarter{
			twoTeamQuarter([]match.GoalAssistPair{
				{Goal: match.Goal{Player: "Budi", Team: "Team B"}},
			}, nil),
		},
	}

	agg := Aggregate([]match.Match{m}, testFilter())
	if got := agg.Tallies["gio"].Counters.CleanSheets; got != 0 {
		t.Fatalf("expected no clean sheet for Gio, got %d", got)
	}
	if got := agg.Tallies["cahya"].Counters.CleanSheets; got != 1 {
		t.Fatalf("expected clean sheet for Team B defender, got %d", got)
	}
}

func TestAggregate_CleanSheetAwardedWhenNothingConceded(t *testing.T) {
	m := match.Match{
		ID:   "m1",
		Date: "2024-03-02",
		Quarters: []match.Quarter{
			twoTeamQuarter([]match.GoalAssistPair{
				{Goal: match.Goal{Player: "Ari", Team: "Team A"}},
			}, nil),
		},
	}

	agg := Aggregate([]match.Match{m}, testFilter())
	if got := agg.Tallies["gio"].Counters.CleanSheets; got != 1 {
		t.Fatalf("expected clean sheet for Gio, got %d", got)
	}
	if got := agg.Tallies["ari"].Counters.CleanSheets; got != 0 {
		t.Fatalf("midfielders never earn clean sheets, got %d", got)
	}
}

func TestAggregate_OwnGoalChargedAgainstTeamDeniesCleanSheet(t *testing.T) {
	m := match.Match{
		ID:       "m1",
		Date:     "2024-03-02",
		Quarters: []match.Quarter{twoTeamQuarter(nil, []match.OwnGoal{{Team: " team a "}})},
	}

	agg := Aggregate([]match.Match{m}, testFilter())
	if got := agg.Tallies["gio"].Counters.CleanSheets; got != 0 {
		t.Fatalf("expected own goal against Team A to deny clean sheet, got %d", got)
	}
	if got := agg.Tallies["cahya"].Counters.CleanSheets; got != 1 {
		t.Fatalf("own goal against Team A must not affect Team B, got %d", got)
	}
}

func TestAggregate_TeamNamesAreNormalized(t *testing.T) {
	m := match.Match{
		ID:   "m1",
		Date: "2024-03-02",
		Quarters: []match.Quarter{
			twoTeamQuarter([]match.GoalAssistPair{
				{Goal: match.Goal{Player: "Budi", Team: "  TEAM   b "}},
			}, nil),
		},
	}

	agg := Aggregate([]match.Match{m}, testFilter())
	if got := agg.Tallies["gio"].Counters.CleanSheets; got != 0 {
		t.Fatalf("expected normalized team match to deny clean sheet, got %d", got)
	}
}

func TestAggregate_MalformedGoalIsSkipped(t *testing.T) {
	m := match.Match{
		ID:   "m1",
		Date: "2024-03-02",
		Quarters: []match.Quarter{
			twoTeamQuarter([]match.GoalAssistPair{
				{Goal: match.Goal{Player: "", Team: "Team A"}, Assist: &match.Assist{Player: "Ari"}},
				{Goal: match.Goal{Player: "Budi", Team: "Team B"}, Assist: &match.Assist{Player: "Cahya"}},
			}, nil),
		},
	}

	agg := Aggregate([]match.Match{m}, testFilter())

	totalGoals := 0
	for _, tally := range agg.Tallies {
		totalGoals += tally.Counters.Goals
	}
	if totalGoals != 1 {
		t.Fatalf("expected only the valid goal to count, got %d", totalGoals)
	}
	if got := agg.Tallies["budi"].Counters.Goals; got != 1 {
		t.Fatalf("expected Budi goal, got %d", got)
	}
	if got := agg.Tallies["cahya"].Counters.Assists; got != 1 {
		t.Fatalf("expected Cahya assist, got %d", got)
	}
	if got := agg.Tallies["ari"].Counters.Assists; got != 0 {
		t.Fatalf("assist on a malformed goal must be skipped, got %d", got)
	}
	if len(agg.Skipped) != 1 {
		t.Fatalf("expected one skipped entry, got %d", len(agg.Skipped))
	}
	if !errors.Is(agg.Skipped[0], ErrMalformedRecord) {
		t.Fatalf("expected skipped entry to wrap ErrMalformedRecord")
	}
}

func TestAggregate_CountsQuarterAppearancesOncePerQuarter(t *testing.T) {
	q := twoTeamQuarter(nil, nil)
	q.Teams[1].Players = append(q.Teams[1].Players, match.Appearance{Name: "gio", Position: "GK"})
	m := match.Match{ID: "m1", Date: "2024-03-02", Quarters: []match.Quarter{q, twoTeamQuarter(nil, nil)}}

	agg := Aggregate([]match.Match{m}, testFilter())
	if got := agg.Tallies["gio"].Counters.Matches; got != 2 {
		t.Fatalf("expected 2 quarter appearances, got %d", got)
	}
	if got := agg.Tallies["budi"].Counters.Matches; got != 2 {
		t.Fatalf("expected 2 quarter appearances, got %d", got)
	}
}

func TestAggregate_YearFilterAndRange(t *testing.T) {
	matches := []match.Match{
		{ID: "old", Date: "2019-01-01", Quarters: []match.Quarter{twoTeamQuarter(nil, nil)}},
		{ID: "a", Date: "2023-05-01", Quarters: []match.Quarter{twoTeamQuarter(nil, nil)}},
		{ID: "b", Date: "2024-05-01", Quarters: []match.Quarter{twoTeamQuarter(nil, nil)}},
		{ID: "c", Date: "2024-06-11", Quarters: []match.Quarter{twoTeamQuarter(nil, nil)}},
		{ID: "bad", Date: "24", Quarters: []match.Quarter{twoTeamQuarter(nil, nil)}},
	}

	all := Aggregate(matches, testFilter())
	if got := all.Tallies["gio"].Counters.Matches; got != 3 {
		t.Fatalf("expected 3 in-range quarters, got %d", got)
	}

	byYear := AggregateByYear(matches, stats.DefaultYears())
	if got := byYear["2024"].Tallies["gio"].Counters.Matches; got != 2 {
		t.Fatalf("expected 2 quarters in 2024, got %d", got)
	}
	if _, ok := byYear["2022"].Tallies["gio"]; ok {
		t.Fatalf("expected no tally for 2022")
	}

	june := Aggregate(matches, AggregateFilter{Years: stats.DefaultYears(), YearMonth: "2024-06"})
	if got := june.Tallies["gio"].Counters.Matches; got != 1 {
		t.Fatalf("expected 1 quarter in 2024-06, got %d", got)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := Aggregate(nil, testFilter())
	if agg.Tallies == nil || len(agg.Tallies) != 0 {
		t.Fatalf("expected empty non-nil tallies, got %+v", agg.Tallies)
	}
	if len(agg.Keys()) != 0 {
		t.Fatalf("expected no keys")
	}
}

func TestAggregate_PositionHistogram(t *testing.T) {
	q1 := twoTeamQuarter(nil, nil)
	q2 := twoTeamQuarter(nil, nil)
	q2.Teams[0].Players[1].Position = "CB1"
	q3 := twoTeamQuarter(nil, nil)
	q3.Teams[0].Players[1].Position = "CB2"
	m := match.Match{ID: "m1", Date: "2025-01-04", Quarters: []match.Quarter{q1, q2, q3}}

	agg := Aggregate([]match.Match{m}, testFilter())
	ari := agg.Tallies["ari"]
	if got := ari.Positions.Count("CB"); got != 2 {
		t.Fatalf("expected 2 CB appearances after normalization, got %d", got)
	}
	if got := ResolvePosition(ari.Positions, "ST"); got != "CB" {
		t.Fatalf("expected resolved position CB, got %q", got)
	}
	if got := ari.Counters.CleanSheets; got != 2 {
		t.Fatalf("expected clean sheets only for quarters played as CB, got %d", got)
	}
}
