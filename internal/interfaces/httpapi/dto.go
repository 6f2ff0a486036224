package httpapi

import (
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

type leaderboardQueryDTO struct {
	Period string `validate:"required"`
	Stat   string `validate:"required"`
	Limit  int    `validate:"gte=0,lte=500"`
}

type matchStandingsQueryDTO struct {
	Period string `validate:"required"`
	Stat   string `validate:"required"`
}

type slotRequestDTO struct {
	Name string `json:"name" validate:"required,max=80"`
}

type playerDTO struct {
	ID       string                    `json:"id"`
	Name     string                    `json:"name"`
	Position string                    `json:"position"`
	Current  stats.Counters            `json:"current"`
	History  map[string]stats.Counters `json:"history,omitempty"`
}

type playerProfileDTO struct {
	Player playerDTO            `json:"player"`
	Ranks  []usecase.PeriodRank `json:"ranks"`
}

type awardCandidateDTO struct {
	Name     string         `json:"name"`
	Score    float64        `json:"score"`
	Position string         `json:"position"`
	Stats    stats.Counters `json:"stats"`
}

type monthlyAwardDTO struct {
	ID        string   `json:"id,omitempty"`
	YearMonth string   `json:"yearMonth"`
	Slots     []string `json:"slots"`
	MaxSlots  int      `json:"maxSlots"`
	Winners   []string `json:"winners"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

type slotMutationDTO struct {
	Award monthlyAwardDTO `json:"award"`
	Slot  int             `json:"slot"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		Name:     p.Name,
		Position: p.Position,
		Current:  p.Current,
		History:  p.History,
	}
}

func candidatesToDTO(items []standings.AwardCandidate) []awardCandidateDTO {
	out := make([]awardCandidateDTO, 0, len(items))
	for _, c := range items {
		out = append(out, awardCandidateDTO{
			Name:     c.Name,
			Score:    c.Score,
			Position: c.Position,
			Stats:    c.Stats,
		})
	}
	return out
}

func awardToDTO(a award.MonthlyAward) monthlyAwardDTO {
	out := monthlyAwardDTO{
		ID:        a.ID,
		YearMonth: a.YearMonth,
		Slots:     a.Board.Slots(),
		MaxSlots:  a.Board.MaxSlots(),
		Winners:   a.Winners(),
	}
	if !a.UpdatedAt.IsZero() {
		out.UpdatedAt = a.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
