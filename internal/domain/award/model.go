package award

import (
	"fmt"
	"regexp"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/standings"
)

var yearMonthRegex = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// MonthlyAward is the admin-curated award for one "YYYY-MM" month.
type MonthlyAward struct {
	ID        string
	YearMonth string
	Board     standings.SlotBoard
	UpdatedAt time.Time
}

// Winners returns the occupied slots in slot order.
func (a MonthlyAward) Winners() []string {
	out := make([]string, 0, a.Board.Len())
	for _, s := range a.Board.Slots() {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func ValidateYearMonth(v string) error {
	if !yearMonthRegex.MatchString(v) {
		return fmt.Errorf("invalid year-month %q: expected YYYY-MM", v)
	}
	return nil
}
