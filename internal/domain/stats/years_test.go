package stats

import "testing"

func TestParseYears(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Years
		wantErr bool
	}{
		{name: "range", raw: "2022-2025", want: Years{"2022", "2023", "2024", "2025"}},
		{name: "csv sorted and deduplicated", raw: "2024, 2022,2024", want: Years{"2022", "2024"}},
		{name: "single", raw: "2023", want: Years{"2023"}},
		{name: "reversed range", raw: "2025-2022", wantErr: true},
		{name: "bad year", raw: "20x4", wantErr: true},
		{name: "empty", raw: " ", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseYears(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse years: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("unexpected years: got=%v want=%v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("unexpected years: got=%v want=%v", got, tc.want)
				}
			}
		})
	}
}

func TestYears_Periods(t *testing.T) {
	years := Years{"2024", "2025"}
	periods := years.Periods()
	if len(periods) != 3 || periods[2] != CareerPeriod {
		t.Fatalf("unexpected periods: %v", periods)
	}
	if years.Latest() != "2025" {
		t.Fatalf("unexpected latest year: %s", years.Latest())
	}
	if !years.ValidPeriod(CareerPeriod) || years.ValidPeriod("2019") {
		t.Fatalf("unexpected period validation")
	}
	if (Years{}).Latest() != "" {
		t.Fatalf("expected empty latest for empty years")
	}
}

func TestParseStatKeys(t *testing.T) {
	keys, err := ParseStatKeys("goals, CLEANSHEETS,momScore")
	if err != nil {
		t.Fatalf("parse stat keys: %v", err)
	}
	if len(keys) != 3 || keys[1] != StatCleanSheets {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if _, err := ParseStatKeys("goals,goals"); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := ParseStatKeys("saves"); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestStatKey_Value(t *testing.T) {
	c := Counters{Matches: 1, Goals: 2, Assists: 3, CleanSheets: 4, MomScore: 5.5, PersonalPoints: 6}
	tests := map[StatKey]float64{
		StatMatches:        1,
		StatGoals:          2,
		StatAssists:        3,
		StatCleanSheets:    4,
		StatMomScore:       5.5,
		StatPersonalPoints: 6,
	}
	for key, want := range tests {
		if got := key.Value(c); got != want {
			t.Fatalf("%s: got %v want %v", key, got, want)
		}
	}
}
