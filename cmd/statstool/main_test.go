package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATA_BACKEND", "memory")

	var out bytes.Buffer
	prev := stdout
	stdout = &out
	t.Cleanup(func() { stdout = prev })

	var cli struct {
		globalCmd

		Leaderboard leaderboardCmd `cmd:""`
		Player      playerCmd      `cmd:""`
		Standings   standingsCmd   `cmd:""`
		Candidates  candidatesCmd  `cmd:""`
		Award       awardCmd       `cmd:""`
		Seed        seedCmd        `cmd:""`
	}
	parser, err := kong.New(&cli, kong.Name("statstool"))
	if err != nil {
		t.Fatalf("build parser: %v", err)
	}

	envFile := filepath.Join(t.TempDir(), "missing.env")
	ctx, err := parser.Parse(append([]string{"--env-file", envFile, "--log-level", "error"}, args...))
	if err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	if err := ctx.Run(&cli.globalCmd); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
	return strings.ToLower(out.String())
}

func TestLeaderboardCommand(t *testing.T) {
	out := runCLI(t, "leaderboard", "--period", "2025", "--stat", "goals", "--limit", "1")

	if !strings.Contains(out, "fajar nugroho") {
		t.Fatalf("expected leader in output:\n%s", out)
	}
	if strings.Contains(out, "dimas saputra") {
		t.Fatalf("expected limit to cut the second rank:\n%s", out)
	}
}

func TestPlayerCommand(t *testing.T) {
	out := runCLI(t, "player", "--name", "dimas saputra")

	for _, want := range []string{"plr-dimas", "career", "assists"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCandidatesAndAwardCommands(t *testing.T) {
	out := runCLI(t, "candidates", "--month", "2025-06", "--limit", "2")
	if !strings.Contains(out, "candidates 2025-06") || !strings.Contains(out, "clean sheets") {
		t.Fatalf("unexpected candidates output:\n%s", out)
	}

	out = runCLI(t, "award", "2025-06")
	if !strings.Contains(out, "3/5 slots") {
		t.Fatalf("expected an empty default board:\n%s", out)
	}
}

func TestStandingsCommand(t *testing.T) {
	out := runCLI(t, "standings", "--period", "2025", "--stat", "goals")
	if !strings.Contains(out, "matches 2025 / goals") {
		t.Fatalf("unexpected standings output:\n%s", out)
	}
}

func TestSeedCommand_DryRun(t *testing.T) {
	out := runCLI(t, "seed", "--dry-run")
	if !strings.Contains(out, "would write 6 players and 2 matches") {
		t.Fatalf("unexpected seed output: %q", out)
	}
}
