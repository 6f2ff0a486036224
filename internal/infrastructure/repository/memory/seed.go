package memory

import (
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

// SeedPlayers is the local development roster.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: "plr-andri", Name: "Andri Wijaya", Position: "GK",
			Current: stats.Counters{Matches: 14, CleanSheets: 6, MomScore: 7.1, PersonalPoints: 42, WinRate: 0.57},
			History: map[string]stats.Counters{
				"2023": {Matches: 20, CleanSheets: 9, MomScore: 6.8, PersonalPoints: 55, WinRate: 0.55},
				"2024": {Matches: 18, CleanSheets: 7, MomScore: 7.0, PersonalPoints: 50, WinRate: 0.61},
			},
		},
		{
			ID: "plr-bagas", Name: "Bagas Pratama", Position: "CB1",
			Current: stats.Counters{Matches: 15, Goals: 2, Assists: 1, CleanSheets: 5, MomScore: 6.4, PersonalPoints: 38, WinRate: 0.6},
			History: map[string]stats.Counters{
				"2024": {Matches: 19, Goals: 1, Assists: 2, CleanSheets: 8, MomScore: 6.6, PersonalPoints: 47, WinRate: 0.58},
			},
		},
		{
			ID: "plr-dimas", Name: "Dimas Saputra", Position: "CM2",
			Current: stats.Counters{Matches: 16, Goals: 6, Assists: 9, MomScore: 8.2, PersonalPoints: 61, WinRate: 0.62},
			History: map[string]stats.Counters{
				"2022": {Matches: 12, Goals: 3, Assists: 4, MomScore: 6.1, PersonalPoints: 30, WinRate: 0.5},
				"2023": {Matches: 21, Goals: 7, Assists: 8, MomScore: 7.4, PersonalPoints: 58, WinRate: 0.52},
				"2024": {Matches: 20, Goals: 5, Assists: 11, MomScore: 7.9, PersonalPoints: 63, WinRate: 0.6},
			},
		},
		{
			ID: "plr-fajar", Name: "Fajar Nugroho", Position: "ST1",
			Current: stats.Counters{Matches: 15, Goals: 12, Assists: 3, MomScore: 8.0, PersonalPoints: 64, WinRate: 0.6},
			History: map[string]stats.Counters{
				"2023": {Matches: 18, Goals: 14, Assists: 2, MomScore: 7.7, PersonalPoints: 66, WinRate: 0.5},
				"2024": {Matches: 17, Goals: 12, Assists: 4, MomScore: 7.5, PersonalPoints: 60, WinRate: 0.65},
			},
		},
		{
			ID: "plr-gilang", Name: "Gilang Ramadhan", Position: "LB",
			Current: stats.Counters{Matches: 12, Goals: 1, Assists: 4, CleanSheets: 4, MomScore: 6.2, PersonalPoints: 33, WinRate: 0.5},
		},
		{
			ID: "plr-hendra", Name: "Hendra Kusuma", Position: "RW",
			Current: stats.Counters{Matches: 13, Goals: 6, Assists: 6, MomScore: 7.3, PersonalPoints: 48, WinRate: 0.54},
			History: map[string]stats.Counters{
				"2024": {Matches: 9, Goals: 2, Assists: 3, MomScore: 6.0, PersonalPoints: 24, WinRate: 0.44},
			},
		},
	}
}

// SeedMatches holds two recorded sessions of the current season.
func SeedMatches() []match.Match {
	orange := func(extra ...match.Appearance) match.TeamSheet {
		return match.TeamSheet{Name: "Orange", Players: append([]match.Appearance{
			{Name: "Andri Wijaya", Position: "GK"},
			{Name: "Bagas Pratama", Position: "CB1"},
			{Name: "Dimas Saputra", Position: "CM2"},
		}, extra...)}
	}
	navy := func(extra ...match.Appearance) match.TeamSheet {
		return match.TeamSheet{Name: "Navy", Players: append([]match.Appearance{
			{Name: "Fajar Nugroho", Position: "ST1"},
			{Name: "Gilang Ramadhan", Position: "LB"},
		}, extra...)}
	}

	return []match.Match{
		{
			ID:   "match-2025-06-07",
			Date: "2025-06-07",
			Quarters: []match.Quarter{
				{
					Teams: []match.TeamSheet{orange(), navy(match.Appearance{Name: "Hendra Kusuma", Position: "RW"})},
					GoalAssistPairs: []match.GoalAssistPair{
						{Goal: match.Goal{Player: "Fajar Nugroho", Team: "Navy"}, Assist: &match.Assist{Player: "Hendra Kusuma"}},
					},
				},
				{
					Teams: []match.TeamSheet{orange(), navy(match.Appearance{Name: "Hendra Kusuma", Position: "CM1"})},
					GoalAssistPairs: []match.GoalAssistPair{
						{Goal: match.Goal{Player: "Dimas Saputra", Team: "Orange"}},
					},
					OwnGoals: []match.OwnGoal{{Team: "Orange"}},
				},
			},
		},
		{
			ID:   "match-2025-06-21",
			Date: "2025-06-21",
			Quarters: []match.Quarter{
				{
					Teams: []match.TeamSheet{orange(match.Appearance{Name: "Hendra Kusuma", Position: "RW"}), navy()},
					GoalAssistPairs: []match.GoalAssistPair{
						{Goal: match.Goal{Player: "Hendra Kusuma", Team: "Orange"}, Assist: &match.Assist{Player: "Dimas Saputra"}},
						{Goal: match.Goal{Player: "Bagas Pratama", Team: "Orange"}},
					},
				},
				{
					Teams: []match.TeamSheet{orange(), navy()},
				},
			},
		},
	}
}
