package stats

// Counters is one snapshot of a player's cumulative numbers.
type Counters struct {
	Matches        int     `json:"matches" firestore:"matches"`
	Goals          int     `json:"goals" firestore:"goals"`
	Assists        int     `json:"assists" firestore:"assists"`
	CleanSheets    int     `json:"cleanSheets" firestore:"cleanSheets"`
	MomScore       float64 `json:"momScore" firestore:"momScore"`
	PersonalPoints float64 `json:"personalPoints" firestore:"personalPoints"`
	WinRate        float64 `json:"winRate" firestore:"winRate"`
}

// Add sums the additive counters. WinRate is not additive: the receiver's
// value is kept and callers combine rates with WeightedWinRate.
func (c Counters) Add(other Counters) Counters {
	return Counters{
		Matches:        c.Matches + other.Matches,
		Goals:          c.Goals + other.Goals,
		Assists:        c.Assists + other.Assists,
		CleanSheets:    c.CleanSheets + other.CleanSheets,
		MomScore:       c.MomScore + other.MomScore,
		PersonalPoints: c.PersonalPoints + other.PersonalPoints,
		WinRate:        c.WinRate,
	}
}

// WeightedWinRate combines per-snapshot win rates weighted by matches played.
// Snapshots without matches only count when no snapshot has any.
func WeightedWinRate(snapshots []Counters) float64 {
	if len(snapshots) == 0 {
		return 0
	}

	var weighted float64
	var matches int
	for _, s := range snapshots {
		weighted += s.WinRate * float64(s.Matches)
		matches += s.Matches
	}
	if matches > 0 {
		return weighted / float64(matches)
	}

	var sum float64
	for _, s := range snapshots {
		sum += s.WinRate
	}
	return sum / float64(len(snapshots))
}
