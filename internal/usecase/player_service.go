package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

// PeriodRank is a player's standing for one stat in one period, zeros included.
type PeriodRank struct {
	Period string        `json:"period"`
	Stat   stats.StatKey `json:"stat"`
	Rank   int           `json:"rank"`
	Score  float64       `json:"score"`
	// Of is the number of players ranked in that period.
	Of int `json:"of"`
}

type PlayerProfile struct {
	Player player.Player
	Ranks  []PeriodRank
}

type PlayerService struct {
	playerRepo player.Repository
	years      stats.Years
	rankedKeys []stats.StatKey
}

func NewPlayerService(playerRepo player.Repository, years stats.Years, rankedKeys []stats.StatKey) *PlayerService {
	if len(rankedKeys) == 0 {
		rankedKeys = stats.DefaultRankedKeys()
	}
	return &PlayerService{
		playerRepo: playerRepo,
		years:      years,
		rankedKeys: rankedKeys,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, unavailable("list players", err)
	}
	return players, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, unavailable("get player", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

// FindByName resolves a display name to one player. Names are not unique;
// the last matching record in repository order wins.
func (s *PlayerService) FindByName(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.FindByName")
	defer span.End()

	players, err := s.List(ctx)
	if err != nil {
		return player.Player{}, err
	}
	return findByName(players, name)
}

// Search returns the named player with their rank for every ranked stat in
// every period they have a line in.
func (s *PlayerService) Search(ctx context.Context, name string) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	players, err := s.List(ctx)
	if err != nil {
		return PlayerProfile{}, err
	}
	found, err := findByName(players, name)
	if err != nil {
		return PlayerProfile{}, err
	}

	rollup := standings.BuildRollup(players, s.years)
	key := standings.RollupKey(found)

	profile := PlayerProfile{Player: found, Ranks: []PeriodRank{}}
	for _, period := range s.years.Periods() {
		lines, ok := rollup.Period(period)
		if !ok {
			continue
		}
		if _, present := lines[key]; !present {
			continue
		}
		for _, stat := range s.rankedKeys {
			ranked := standings.Rank(standings.StatEntries(lines, stat), standings.RankOptions{Period: period})
			row, ok := standings.RankOf(ranked, key)
			if !ok {
				continue
			}
			profile.Ranks = append(profile.Ranks, PeriodRank{
				Period: period,
				Stat:   stat,
				Rank:   row.Rank,
				Score:  row.Score,
				Of:     len(ranked),
			})
		}
	}

	return profile, nil
}

func findByName(players []player.Player, name string) (player.Player, error) {
	key := player.NameKey(name)
	if key == "" {
		return player.Player{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var (
		found player.Player
		ok    bool
	)
	for _, p := range players {
		if player.NameKey(p.Name) == key {
			found, ok = p, true
		}
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player name=%q", ErrNotFound, strings.TrimSpace(name))
	}
	return found, nil
}
