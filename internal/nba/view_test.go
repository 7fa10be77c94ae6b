package nba

import "testing"

func sampleRow() SeasonRow {
	return SeasonRow{
		PlayerID: 7, Season: 2024,
		FirstName: "Test", LastName: "Player", TeamAbbreviation: "TY", Position: "G",
		GP: 2, Min: 32.5, Pts: 15, Reb: 10, Ast: 7.5, Stl: 1.5, Blk: 0.5, Turnover: 1.5,
		UDFP: 42.75, DKFP: 40,
		TotalMin: 65, TotalPts: 30, TotalReb: 20, TotalAst: 15, TotalStl: 3,
		TotalBlk: 1, TotalTurnover: 3, TotalFg3m: 4, TotalUDFP: 85.5, TotalDKFP: 80,
	}
}

func TestParseViewMode(t *testing.T) {
	cases := []struct {
		input string
		want  ViewMode
		ok    bool
	}{
		{"", ViewPerGame, true},
		{"per_game", ViewPerGame, true},
		{"totals", ViewTotals, true},
		{"per_minute", ViewPerMinute, true},
		{"per-game", "", false},
		{"bogus", "", false},
	}
	for _, tc := range cases {
		got, err := ParseViewMode(tc.input)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseViewMode(%q) = %v, %v; want %v", tc.input, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseViewMode(%q) should fail", tc.input)
		}
	}
}

func TestProjectPerGamePassesAveragesThrough(t *testing.T) {
	row := sampleRow()
	out := Project(row, ViewPerGame)
	if out.GP != 2 || out.Min != row.Min || out.Pts != row.Pts || out.UDFP != row.UDFP {
		t.Fatalf("per-game projection mismatch: %+v", out)
	}
}

func TestProjectTotalsRoundsCountingStats(t *testing.T) {
	row := sampleRow()
	row.TotalPts = 30.4
	row.TotalReb = 19.6
	out := Project(row, ViewTotals)

	if out.Pts != 30 || out.Reb != 20 {
		t.Fatalf("totals counting stats should round: pts=%v reb=%v", out.Pts, out.Reb)
	}
	if out.Min != row.TotalMin {
		t.Fatalf("totals minutes should not round: %v", out.Min)
	}
	if out.UDFP != row.TotalUDFP || out.DKFP != row.TotalDKFP {
		t.Fatalf("totals fantasy points should pass through: %+v", out)
	}
	if out.GP != 2 {
		t.Fatalf("gp must stay the games-played count, got %v", out.GP)
	}
}

func TestProjectPerMinuteRates(t *testing.T) {
	row := sampleRow()
	out := Project(row, ViewPerMinute)

	if !almostEqual(out.Pts, row.TotalPts/row.TotalMin) {
		t.Fatalf("pts per minute = %v, want %v", out.Pts, row.TotalPts/row.TotalMin)
	}
	if !almostEqual(out.UDFP, row.TotalUDFP/row.TotalMin) {
		t.Fatalf("ud_fp per minute = %v, want %v", out.UDFP, row.TotalUDFP/row.TotalMin)
	}
	// Minutes column stays the per-game average, not divided again.
	if out.Min != row.Min {
		t.Fatalf("per-minute min = %v, want per-game average %v", out.Min, row.Min)
	}
}

func TestProjectPerMinuteZeroMinutesGuard(t *testing.T) {
	row := sampleRow()
	row.TotalMin = 0
	out := Project(row, ViewPerMinute)

	for name, v := range map[string]float64{
		"pts": out.Pts, "reb": out.Reb, "ast": out.Ast, "stl": out.Stl,
		"blk": out.Blk, "turnover": out.Turnover, "ud_fp": out.UDFP, "dk_fp": out.DKFP,
	} {
		if v != 0 {
			t.Fatalf("%s should be 0 with zero total minutes, got %v", name, v)
		}
	}
}

func TestProjectAll(t *testing.T) {
	rows := []SeasonRow{sampleRow(), sampleRow()}
	out := ProjectAll(rows, ViewTotals)
	if len(out) != 2 {
		t.Fatalf("expected 2 display rows, got %d", len(out))
	}
}
