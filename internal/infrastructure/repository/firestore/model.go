package firestore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

var errMalformedDocument = errors.New("malformed document")

// playerDoc keeps the current-year counters at the top level of the document;
// prior years live under history keyed by year.
type playerDoc struct {
	Name     string `firestore:"name"`
	Position string `firestore:"position"`
	stats.Counters
	History map[string]stats.Counters `firestore:"history,omitempty"`
}

func (d playerDoc) toDomain(id string) (player.Player, error) {
	p := player.Player{
		ID:       id,
		Name:     strings.TrimSpace(d.Name),
		Position: strings.TrimSpace(d.Position),
		Current:  d.Counters,
		History:  d.History,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: player %s: %v", errMalformedDocument, id, err)
	}
	return p, nil
}

func playerDocFromDomain(p player.Player) playerDoc {
	return playerDoc{
		Name:     p.Name,
		Position: p.Position,
		Counters: p.Current,
		History:  p.History,
	}
}

type appearanceDoc struct {
	Name     string `firestore:"name"`
	Position string `firestore:"position"`
}

type teamDoc struct {
	Name    string          `firestore:"name"`
	Players []appearanceDoc `firestore:"players"`
}

type goalDoc struct {
	Player string `firestore:"player"`
	Team   string `firestore:"team"`
}

type assistDoc struct {
	Player string `firestore:"player"`
}

type goalAssistDoc struct {
	Goal   goalDoc    `firestore:"goal"`
	Assist *assistDoc `firestore:"assist,omitempty"`
}

type ownGoalDoc struct {
	Team string `firestore:"team"`
}

type quarterDoc struct {
	Teams           []teamDoc       `firestore:"teams"`
	GoalAssistPairs []goalAssistDoc `firestore:"goalAssistPairs"`
	OwnGoals        []ownGoalDoc    `firestore:"ownGoals"`
}

type matchDoc struct {
	Date     string       `firestore:"date"`
	Quarters []quarterDoc `firestore:"quarters"`
}

func (d matchDoc) toDomain(id string) (match.Match, error) {
	if strings.TrimSpace(d.Date) == "" {
		return match.Match{}, fmt.Errorf("%w: match %s has no date", errMalformedDocument, id)
	}

	m := match.Match{ID: id, Date: strings.TrimSpace(d.Date), Quarters: make([]match.Quarter, 0, len(d.Quarters))}
	for _, q := range d.Quarters {
		quarter := match.Quarter{
			Teams:           make([]match.TeamSheet, 0, len(q.Teams)),
			GoalAssistPairs: make([]match.GoalAssistPair, 0, len(q.GoalAssistPairs)),
			OwnGoals:        make([]match.OwnGoal, 0, len(q.OwnGoals)),
		}
		for _, t := range q.Teams {
			sheet := match.TeamSheet{Name: t.Name, Players: make([]match.Appearance, 0, len(t.Players))}
			for _, a := range t.Players {
				sheet.Players = append(sheet.Players, match.Appearance{Name: a.Name, Position: a.Position})
			}
			quarter.Teams = append(quarter.Teams, sheet)
		}
		for _, g := range q.GoalAssistPairs {
			pair := match.GoalAssistPair{Goal: match.Goal{Player: g.Goal.Player, Team: g.Goal.Team}}
			if g.Assist != nil {
				pair.Assist = &match.Assist{Player: g.Assist.Player}
			}
			quarter.GoalAssistPairs = append(quarter.GoalAssistPairs, pair)
		}
		for _, og := range q.OwnGoals {
			quarter.OwnGoals = append(quarter.OwnGoals, match.OwnGoal{Team: og.Team})
		}
		m.Quarters = append(m.Quarters, quarter)
	}
	return m, nil
}

func matchDocFromDomain(m match.Match) matchDoc {
	doc := matchDoc{Date: m.Date, Quarters: make([]quarterDoc, 0, len(m.Quarters))}
	for _, q := range m.Quarters {
		qd := quarterDoc{
			Teams:           make([]teamDoc, 0, len(q.Teams)),
			GoalAssistPairs: make([]goalAssistDoc, 0, len(q.GoalAssistPairs)),
			OwnGoals:        make([]ownGoalDoc, 0, len(q.OwnGoals)),
		}
		for _, t := range q.Teams {
			td := teamDoc{Name: t.Name, Players: make([]appearanceDoc, 0, len(t.Players))}
			for _, a := range t.Players {
				td.Players = append(td.Players, appearanceDoc{Name: a.Name, Position: a.Position})
			}
			qd.Teams = append(qd.Teams, td)
		}
		for _, pair := range q.GoalAssistPairs {
			gd := goalAssistDoc{Goal: goalDoc{Player: pair.Goal.Player, Team: pair.Goal.Team}}
			if pair.Assist != nil {
				gd.Assist = &assistDoc{Player: pair.Assist.Player}
			}
			qd.GoalAssistPairs = append(qd.GoalAssistPairs, gd)
		}
		for _, og := range q.OwnGoals {
			qd.OwnGoals = append(qd.OwnGoals, ownGoalDoc{Team: og.Team})
		}
		doc.Quarters = append(doc.Quarters, qd)
	}
	return doc
}

type awardDoc struct {
	ID        string    `firestore:"id"`
	YearMonth string    `firestore:"yearMonth"`
	Slots     []string  `firestore:"slots"`
	MaxSlots  int       `firestore:"maxSlots"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func (d awardDoc) toDomain(yearMonth string) award.MonthlyAward {
	return award.MonthlyAward{
		ID:        d.ID,
		YearMonth: yearMonth,
		Board:     standings.RestoreSlotBoard(d.Slots, d.MaxSlots),
		UpdatedAt: d.UpdatedAt,
	}
}

func awardDocFromDomain(a award.MonthlyAward) awardDoc {
	return awardDoc{
		ID:        a.ID,
		YearMonth: a.YearMonth,
		Slots:     a.Board.Slots(),
		MaxSlots:  a.Board.MaxSlots(),
		UpdatedAt: a.UpdatedAt,
	}
}
