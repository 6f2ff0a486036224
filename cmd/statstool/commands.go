package main

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/config"
	firestorerepo "github.com/riskibarqy/club-stats/internal/infrastructure/repository/firestore"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

type leaderboardCmd struct {
	Period string `help:"Year (e.g. 2024) or career." required:""`
	Stat   string `help:"Stat key: goals, assists, cleanSheets, matches, momScore, personalPoints." required:""`
	Limit  int    `help:"Keep the top N plus boundary ties. Zero keeps everyone." default:"10"`
}

func (c *leaderboardCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	_, repos, svc, err := g.session(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	stat, err := parseStat(c.Stat)
	if err != nil {
		return err
	}
	board, err := svc.Leaderboards.Leaderboard(ctx, usecase.LeaderboardQuery{
		Period: c.Period,
		Stat:   stat,
		Limit:  c.Limit,
	})
	if err != nil {
		return err
	}
	renderLeaderboard(stdout, board)
	return nil
}

type playerCmd struct {
	Name string `help:"Display name, matched case-insensitively." required:""`
}

func (c *playerCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	_, repos, svc, err := g.session(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	profile, err := svc.Players.Search(ctx, c.Name)
	if err != nil {
		return err
	}
	renderProfile(stdout, profile)
	return nil
}

type standingsCmd struct {
	Period string `help:"Year (e.g. 2025) or career." required:""`
	Stat   string `help:"Stat key: goals, assists, cleanSheets or matches." default:"goals"`
}

func (c *standingsCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	_, repos, svc, err := g.session(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	stat, err := parseStat(c.Stat)
	if err != nil {
		return err
	}
	result, err := svc.MatchStandings.Standings(ctx, c.Period, stat)
	if err != nil {
		return err
	}
	renderStandings(stdout, result)
	return nil
}

type candidatesCmd struct {
	Month string `help:"Award month as YYYY-MM." required:""`
	Limit int    `help:"Shortlist size. Zero uses AWARD_SHORTLIST_SIZE." default:"0"`
}

func (c *candidatesCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	_, repos, svc, err := g.session(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	items, err := svc.Awards.Candidates(ctx, c.Month, c.Limit)
	if err != nil {
		return err
	}
	renderCandidates(stdout, c.Month, items)
	return nil
}

type awardCmd struct {
	Month string `arg:"" help:"Award month as YYYY-MM."`
}

func (c *awardCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	_, repos, svc, err := g.session(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	item, err := svc.Awards.Get(ctx, c.Month)
	if err != nil {
		return err
	}
	renderAward(stdout, item)
	return nil
}

type seedCmd struct {
	DryRun bool `help:"Print what would be written and exit."`
}

func (c *seedCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	players := memory.SeedPlayers()
	matches := memory.SeedMatches()
	if c.DryRun {
		fmt.Fprintf(stdout, "would write %d players and %d matches\n", len(players), len(matches))
		return nil
	}

	cfg, repos, _, err := g.session(ctx)
	if err != nil {
		return err
	}
	defer repos.Close()

	if cfg.DataBackend != config.BackendFirestore || repos.Store == nil {
		return fmt.Errorf("seed requires DATA_BACKEND=%s", config.BackendFirestore)
	}
	if err := firestorerepo.NewPlayerRepository(repos.Store).Upsert(ctx, players); err != nil {
		return fmt.Errorf("seed players: %w", err)
	}
	if err := firestorerepo.NewMatchRepository(repos.Store).Upsert(ctx, matches); err != nil {
		return fmt.Errorf("seed matches: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %d players and %d matches to project %s\n", len(players), len(matches), cfg.FirestoreProjectID)
	return nil
}
