package nba

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUnderdogPoints(t *testing.T) {
	line := StatLine{Pts: 20, Reb: 5, Ast: 3, Stl: 1, Blk: 2, Turnover: 4}
	// 20 + 6 + 4.5 + 3 + 6 - 4
	if got := UnderdogPoints(line); !almostEqual(got, 35.5) {
		t.Fatalf("UnderdogPoints = %v, want 35.5", got)
	}
	if got := UnderdogPoints(StatLine{}); got != 0 {
		t.Fatalf("zero line should score 0, got %v", got)
	}
}

func TestUnderdogLinearity(t *testing.T) {
	games := []StatLine{
		{Pts: 20, Reb: 5, Ast: 3, Stl: 1, Blk: 0, Turnover: 2},
		{Pts: 10, Reb: 15, Ast: 12, Stl: 2, Blk: 1, Turnover: 1},
		{Pts: 33, Reb: 2, Ast: 8, Stl: 0, Blk: 4, Turnover: 5},
	}

	var perGameSum float64
	var totals StatLine
	for _, g := range games {
		perGameSum += UnderdogPoints(g)
		totals.Pts += g.Pts
		totals.Reb += g.Reb
		totals.Ast += g.Ast
		totals.Stl += g.Stl
		totals.Blk += g.Blk
		totals.Turnover += g.Turnover
	}

	n := float64(len(games))
	avg := StatLine{
		Pts: totals.Pts / n, Reb: totals.Reb / n, Ast: totals.Ast / n,
		Stl: totals.Stl / n, Blk: totals.Blk / n, Turnover: totals.Turnover / n,
	}
	if got := UnderdogPoints(avg) * n; !almostEqual(got, perGameSum) {
		t.Fatalf("avg score * gp = %v, per-game sum = %v", got, perGameSum)
	}
}

func TestDraftKingsBase(t *testing.T) {
	line := StatLine{Pts: 8, Reb: 4, Ast: 6, Stl: 1, Blk: 1, Turnover: 2, Fg3m: 2}
	// 8 + 1 + 5 + 9 + 2 + 2 - 1, no bonus
	if got := DraftKingsPoints(line); !almostEqual(got, 26.0) {
		t.Fatalf("DraftKingsPoints = %v, want 26.0", got)
	}
}

func TestDraftKingsBonusTiers(t *testing.T) {
	cases := []struct {
		name  string
		line  StatLine
		bonus float64
	}{
		{"no double digits", StatLine{Pts: 9, Reb: 9, Ast: 9}, 0},
		{"one category", StatLine{Pts: 40}, 0},
		{"double-double", StatLine{Pts: 10, Reb: 10}, 1.5},
		{"triple-double", StatLine{Pts: 10, Reb: 10, Ast: 10}, 3.0},
		{"quadruple-double still 3.0", StatLine{Pts: 10, Reb: 10, Ast: 10, Stl: 10}, 3.0},
		{"boundary at exactly 10", StatLine{Stl: 10, Blk: 10}, 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := tc.line.Pts*1.0 + tc.line.Fg3m*0.5 + tc.line.Reb*1.25 +
				tc.line.Ast*1.5 + tc.line.Stl*2.0 + tc.line.Blk*2.0 + tc.line.Turnover*-0.5
			if got := DraftKingsPoints(tc.line); !almostEqual(got, base+tc.bonus) {
				t.Fatalf("DraftKingsPoints = %v, want base %v + bonus %v", got, base, tc.bonus)
			}
		})
	}
}
