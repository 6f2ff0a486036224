package award

import "context"

// Repository persists monthly awards keyed by year-month.
type Repository interface {
	GetByYearMonth(ctx context.Context, yearMonth string) (MonthlyAward, bool, error)
	Save(ctx context.Context, item MonthlyAward) error
}
