package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

var errStubBackend = errors.New("backend down")

type stubPlayerRepository struct {
	items []player.Player
	err   error
}

func (s *stubPlayerRepository) List(context.Context) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]player.Player, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	if s.err != nil {
		return player.Player{}, false, s.err
	}
	for _, item := range s.items {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

type stubMatchRepository struct {
	items []match.Match
	err   error
}

func (s *stubMatchRepository) List(context.Context) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type stubAwardRepository struct {
	mu      sync.Mutex
	items   map[string]award.MonthlyAward
	saves   int
	saveErr error
}

func newStubAwardRepository() *stubAwardRepository {
	return &stubAwardRepository{items: make(map[string]award.MonthlyAward)}
}

func (s *stubAwardRepository) GetByYearMonth(_ context.Context, yearMonth string) (award.MonthlyAward, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[yearMonth]
	return item, ok, nil
}

func (s *stubAwardRepository) Save(_ context.Context, item award.MonthlyAward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items[item.YearMonth] = item
	s.saves++
	return nil
}

type stubIDGenerator struct {
	next int
}

func (g *stubIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("award-%d", g.next), nil
}

func testYears() stats.Years {
	return stats.Years{"2023", "2024", "2025"}
}

// testPlayers: 2025 goals tie Budi/Cahya at 5, Ari has none; Budi also has a
// 2024 history line and Cahya a 2023 one.
func testPlayers() []player.Player {
	return []player.Player{
		{
			ID:       "p-budi",
			Name:     "Budi Santoso",
			Position: "ST",
			Current:  stats.Counters{Matches: 10, Goals: 5, Assists: 1},
			History: map[string]stats.Counters{
				"2024": {Matches: 8, Goals: 3},
			},
		},
		{
			ID:       "p-cahya",
			Name:     "Cahya",
			Position: "CB2",
			Current:  stats.Counters{Matches: 10, Goals: 5, CleanSheets: 4},
			History: map[string]stats.Counters{
				"2023": {Matches: 6, Goals: 2},
			},
		},
		{
			ID:       "p-ari",
			Name:     "Ari",
			Position: "CM1",
			Current:  stats.Counters{Matches: 4, Assists: 3},
		},
	}
}

func appearance(name, position string) match.Appearance {
	return match.Appearance{Name: name, Position: position}
}

func goal(scorer, team string, assist string) match.GoalAssistPair {
	pair := match.GoalAssistPair{Goal: match.Goal{Player: scorer, Team: team}}
	if assist != "" {
		pair.Assist = &match.Assist{Player: assist}
	}
	return pair
}

// testMatches: one March 2025 match. Q1 Budi scores for Team B assisted by
// Cahya; Q2 Ari scores for Team A and a goal without a scorer counts for Team A.
func testMatches() []match.Match {
	teams := func(extra ...match.Appearance) []match.TeamSheet {
		teamA := []match.Appearance{appearance("Gio", "GK"), appearance("Ari", "CM1")}
		teamA = append(teamA, extra...)
		return []match.TeamSheet{
			{Name: "Team A", Players: teamA},
			{Name: "Team B", Players: []match.Appearance{appearance("Budi Santoso", "ST"), appearance("Cahya", "CB2")}},
		}
	}
	return []match.Match{
		{
			ID:   "m-2025-03-08",
			Date: "2025-03-08",
			Quarters: []match.Quarter{
				{
					Teams:           teams(appearance("Eko", "")),
					GoalAssistPairs: []match.GoalAssistPair{goal("Budi Santoso", "Team B", "Cahya")},
				},
				{
					Teams: teams(),
					GoalAssistPairs: []match.GoalAssistPair{
						goal("Ari", "team a", ""),
						goal("", "Team A", ""),
					},
				},
			},
		},
		{
			ID:   "m-2019-01-01",
			Date: "2019-01-01",
			Quarters: []match.Quarter{
				{
					Teams:           teams(),
					GoalAssistPairs: []match.GoalAssistPair{goal("Gio", "Team A", "")},
				},
			},
		},
	}
}
