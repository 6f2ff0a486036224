package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/riskibarqy/club-stats/internal/domain/award"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	return t
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderLeaderboard(w io.Writer, board usecase.Leaderboard) {
	t := newTable(w, fmt.Sprintf("%s / %s", board.Period, board.Stat))
	t.AppendHeader(table.Row{"Rank", "Player", "Position", "Score"})
	for _, row := range board.Rows {
		t.AppendRow(table.Row{row.Rank, row.Name, row.Position, formatScore(row.Score)})
	}
	t.Render()
}

func renderProfile(w io.Writer, profile usecase.PlayerProfile) {
	p := profile.Player
	t := newTable(w, fmt.Sprintf("%s (%s) %s", p.Name, p.ID, p.Position))
	t.AppendHeader(table.Row{"Period", "Stat", "Rank", "Of", "Score"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	for _, r := range profile.Ranks {
		t.AppendRow(table.Row{r.Period, r.Stat, r.Rank, r.Of, formatScore(r.Score)})
	}
	t.Render()
}

func renderStandings(w io.Writer, result usecase.MatchStandings) {
	t := newTable(w, fmt.Sprintf("matches %s / %s", result.Period, result.Stat))
	t.AppendHeader(table.Row{"Rank", "Player", "Position", "Score", "Matches"})
	for _, row := range result.Rows {
		t.AppendRow(table.Row{row.Rank, row.Name, row.Position, formatScore(row.Score), row.Stats.Matches})
	}
	if result.Skipped > 0 {
		t.AppendFooter(table.Row{"", "skipped entries", result.Skipped})
	}
	t.Render()
}

func renderCandidates(w io.Writer, yearMonth string, items []standings.AwardCandidate) {
	t := newTable(w, "candidates "+yearMonth)
	t.AppendHeader(table.Row{"Player", "Position", "Score", "Goals", "Assists", "Clean Sheets", "Matches"})
	for _, c := range items {
		t.AppendRow(table.Row{
			c.Name, c.Position, formatScore(c.Score),
			c.Stats.Goals, c.Stats.Assists, c.Stats.CleanSheets, c.Stats.Matches,
		})
	}
	t.Render()
}

func renderAward(w io.Writer, item award.MonthlyAward) {
	t := newTable(w, fmt.Sprintf("award %s (%d/%d slots)", item.YearMonth, item.Board.Len(), item.Board.MaxSlots()))
	t.AppendHeader(table.Row{"Slot", "Player"})
	for i, name := range item.Board.Slots() {
		if name == "" {
			name = "-"
		}
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()
}
