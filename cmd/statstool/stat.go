package main

import (
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/stats"
)

func parseStat(raw string) (stats.StatKey, error) {
	key, err := stats.ParseStatKey(raw)
	if err != nil {
		return "", fmt.Errorf("%w (known: %v)", err, stats.DefaultRankedKeys())
	}
	return key, nil
}
