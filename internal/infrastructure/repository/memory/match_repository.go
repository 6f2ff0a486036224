package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/club-stats/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, cloneMatch(m))
	}
	return &MatchRepository{matches: out}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, cloneMatch(m))
	}
	return out, nil
}

func cloneMatch(m match.Match) match.Match {
	quarters := make([]match.Quarter, 0, len(m.Quarters))
	for _, q := range m.Quarters {
		teams := make([]match.TeamSheet, 0, len(q.Teams))
		for _, sheet := range q.Teams {
			teams = append(teams, match.TeamSheet{Name: sheet.Name, Players: slices.Clone(sheet.Players)})
		}
		goals := make([]match.GoalAssistPair, 0, len(q.GoalAssistPairs))
		for _, pair := range q.GoalAssistPairs {
			if pair.Assist != nil {
				assist := *pair.Assist
				pair.Assist = &assist
			}
			goals = append(goals, pair)
		}
		quarters = append(quarters, match.Quarter{
			Teams:           teams,
			GoalAssistPairs: goals,
			OwnGoals:        slices.Clone(q.OwnGoals),
		})
	}
	m.Quarters = quarters
	return m
}
