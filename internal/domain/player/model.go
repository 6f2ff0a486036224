package player

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

// Player is a club member with current-year counters and per-year history.
//
// ID is a stable surrogate. Name is the display name that match records use
// to reference the player; it is not guaranteed to be unique.
type Player struct {
	ID       string
	Name     string
	Position string
	Current  stats.Counters
	History  map[string]stats.Counters
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// NameKey is the normalized form used to join players with match rosters.
func NameKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
