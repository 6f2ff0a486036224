package match

import "strings"

// Match is one recorded session, split into quarters.
type Match struct {
	ID       string
	Date     string
	Quarters []Quarter
}

// Quarter holds the rosters and scoring events of one quarter.
type Quarter struct {
	Teams           []TeamSheet
	GoalAssistPairs []GoalAssistPair
	OwnGoals        []OwnGoal
}

type TeamSheet struct {
	Name    string
	Players []Appearance
}

type Appearance struct {
	Name     string
	Position string
}

// GoalAssistPair credits a goal to a scorer and team, with an optional assist.
type GoalAssistPair struct {
	Goal   Goal
	Assist *Assist
}

type Goal struct {
	Player string
	Team   string
}

type Assist struct {
	Player string
}

// OwnGoal is charged against Team: that team conceded it.
type OwnGoal struct {
	Team string
}

// Year returns the leading four characters of Date, or "" when Date is too short.
func (m Match) Year() string {
	date := strings.TrimSpace(m.Date)
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// YearMonth returns the "YYYY-MM" prefix of Date, or "" when Date is too short.
func (m Match) YearMonth() string {
	date := strings.TrimSpace(m.Date)
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// TeamKey normalizes team names for opponent matching.
func TeamKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
