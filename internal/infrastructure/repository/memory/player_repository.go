package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/club-stats/internal/domain/player"
)

// PlayerRepository keeps players in seed order. A repeated ID replaces the
// earlier record in place.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[string]int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		players: make([]player.Player, 0, len(players)),
		index:   make(map[string]int, len(players)),
	}
	for _, p := range players {
		if i, ok := r.index[p.ID]; ok {
			r.players[i] = clonePlayer(p)
			continue
		}
		r.index[p.ID] = len(r.players)
		r.players = append(r.players, clonePlayer(p))
	}
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, clonePlayer(p))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(r.players[i]), true, nil
}

func clonePlayer(p player.Player) player.Player {
	p.History = maps.Clone(p.History)
	return p
}
