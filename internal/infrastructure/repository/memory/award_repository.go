package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/club-stats/internal/domain/award"
)

type AwardRepository struct {
	mu     sync.RWMutex
	awards map[string]award.MonthlyAward
}

func NewAwardRepository() *AwardRepository {
	return &AwardRepository{awards: make(map[string]award.MonthlyAward)}
}

func (r *AwardRepository) GetByYearMonth(_ context.Context, yearMonth string) (award.MonthlyAward, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.awards[yearMonth]
	return item, ok, nil
}

// Save upserts by year-month. Slot boards are immutable, so storing the value is enough.
func (r *AwardRepository) Save(_ context.Context, item award.MonthlyAward) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.awards[item.YearMonth] = item
	return nil
}
