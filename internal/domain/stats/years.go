package stats

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// CareerPeriod is the period token covering every supported year.
const CareerPeriod = "career"

// Years is the ascending list of supported four-digit years.
type Years []string

// DefaultYears is the range the club has recorded data for.
func DefaultYears() Years {
	return Years{"2022", "2023", "2024", "2025"}
}

// ParseYears accepts either an inclusive range ("2022-2025") or a CSV list.
func ParseYears(raw string) (Years, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("years cannot be empty")
	}

	if from, to, ok := strings.Cut(value, "-"); ok && !strings.Contains(value, ",") {
		start, err := parseYear(from)
		if err != nil {
			return nil, err
		}
		end, err := parseYear(to)
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, fmt.Errorf("invalid year range %q: end before start", raw)
		}
		out := make(Years, 0, end-start+1)
		for y := start; y <= end; y++ {
			out = append(out, strconv.Itoa(y))
		}
		return out, nil
	}

	seen := make(map[int]struct{})
	years := make([]int, 0, 4)
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		y, err := parseYear(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("years cannot be empty")
	}
	slices.Sort(years)

	out := make(Years, 0, len(years))
	for _, y := range years {
		out = append(out, strconv.Itoa(y))
	}
	return out, nil
}

func parseYear(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if len(value) != 4 {
		return 0, fmt.Errorf("invalid year %q: expected four digits", raw)
	}
	y, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", raw, err)
	}
	return y, nil
}

func (y Years) Contains(year string) bool {
	return slices.Contains(y, year)
}

// Latest returns the most recent supported year, which owns the current snapshot.
func (y Years) Latest() string {
	if len(y) == 0 {
		return ""
	}
	return y[len(y)-1]
}

// Periods lists every year followed by the career token.
func (y Years) Periods() []string {
	out := make([]string, 0, len(y)+1)
	out = append(out, y...)
	return append(out, CareerPeriod)
}

// ValidPeriod reports whether period is a supported year or the career token.
func (y Years) ValidPeriod(period string) bool {
	return period == CareerPeriod || y.Contains(period)
}
