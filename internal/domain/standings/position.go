package standings

import (
	"regexp"
	"strings"
)

var positionVariantRegex = regexp.MustCompile(`^(CB|CDM|CM|LB|RB|ST)[0-9]+$`)

// cleanSheetPositions are the canonical goalkeeper and defender codes.
var cleanSheetPositions = map[string]struct{}{
	"GK":  {},
	"CB":  {},
	"LB":  {},
	"RB":  {},
	"LWB": {},
	"RWB": {},
	"SW":  {},
	"DF":  {},
	"DEF": {},
}

// NormalizePosition trims and uppercases a position code and strips numeric
// role-variant suffixes ("CB1", "cdm2") to the canonical code. Codes outside
// the known variants keep their letters, so "cb" and "CB1" both become "CB".
func NormalizePosition(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if m := positionVariantRegex.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return code
}

// IsCleanSheetPosition reports whether a position can earn clean sheets.
func IsCleanSheetPosition(position string) bool {
	_, ok := cleanSheetPositions[NormalizePosition(position)]
	return ok
}
