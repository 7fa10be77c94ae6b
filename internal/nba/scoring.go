package nba

// StatLine is a flat stat tuple fed to the scoring formulas. The same
// tuple shape works for a single game and for a season-average line; the
// formulas do not care which granularity they are given.
type StatLine struct {
	Pts      float64
	Reb      float64
	Ast      float64
	Stl      float64
	Blk      float64
	Turnover float64
	Fg3m     float64
}

// UnderdogPoints scores a stat line under Underdog fantasy rules.
// Linear with no bonus terms, so averages and totals scale exactly.
func UnderdogPoints(s StatLine) float64 {
	return s.Pts*1.0 +
		s.Reb*1.2 +
		s.Ast*1.5 +
		s.Stl*3.0 +
		s.Blk*3.0 +
		s.Turnover*-1.0
}

// DraftKingsPoints scores a stat line under DraftKings fantasy rules,
// including the double-double (+1.5) / triple-double (+3.0) bonus.
// The bonus counts categories at or above 10 among pts/reb/ast/stl/blk.
func DraftKingsPoints(s StatLine) float64 {
	points := s.Pts*1.0 +
		s.Fg3m*0.5 +
		s.Reb*1.25 +
		s.Ast*1.5 +
		s.Stl*2.0 +
		s.Blk*2.0 +
		s.Turnover*-0.5

	doubleDigit := 0
	for _, v := range []float64{s.Pts, s.Reb, s.Ast, s.Stl, s.Blk} {
		if v >= 10 {
			doubleDigit++
		}
	}
	switch {
	case doubleDigit >= 3:
		points += 3.0
	case doubleDigit >= 2:
		points += 1.5
	}
	return points
}
