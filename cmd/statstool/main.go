package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/riskibarqy/club-stats/internal/app"
	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// stdout is where tables are rendered.
var stdout io.Writer = os.Stdout

type globalCmd struct {
	EnvFile  string `help:"Optional .env file loaded before reading the environment." default:".env" type:"path"`
	Backend  string `help:"Override DATA_BACKEND (memory or firestore)."`
	LogLevel string `help:"Log level for diagnostics written to stderr." default:"warn"`
}

// session loads configuration and wires the services for one command run.
func (g *globalCmd) session(ctx context.Context) (config.Config, *app.Repositories, *app.Services, error) {
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return config.Config{}, nil, nil, err
	}
	if backend := strings.TrimSpace(g.Backend); backend != "" {
		if err := os.Setenv("DATA_BACKEND", backend); err != nil {
			return config.Config{}, nil, nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := logging.NewJSONWriter(os.Stderr, level, "statstool")
	logging.SetDefault(logger)

	repos, err := app.NewRepositories(ctx, cfg, logger)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("open %s backend: %w", cfg.DataBackend, err)
	}
	return cfg, repos, app.NewServices(cfg, repos, logger), nil
}

var CLI struct {
	globalCmd

	Leaderboard leaderboardCmd `cmd:"" help:"Rank players for one stat in one period."`
	Player      playerCmd      `cmd:"" help:"Show a player and their rank in every period."`
	Standings   standingsCmd   `cmd:"" help:"Rank counters derived from recorded matches."`
	Candidates  candidatesCmd  `cmd:"" help:"Shortlist award candidates for a month."`
	Award       awardCmd       `cmd:"" help:"Show the award slots for a month."`
	Seed        seedCmd        `cmd:"" help:"Write the development roster and matches to Firestore."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("statstool"),
		kong.Description("Inspect club stats leaderboards, players and monthly awards."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
