package nba

import (
	"fmt"
	"math"
)

// ViewMode selects which derived quantity a display row carries for each
// stat column.
type ViewMode string

const (
	ViewPerGame   ViewMode = "per_game"
	ViewTotals    ViewMode = "totals"
	ViewPerMinute ViewMode = "per_minute"
)

// ParseViewMode validates a view query value. Empty input means per-game.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewPerGame:
		return ViewPerGame, nil
	case ViewTotals:
		return ViewTotals, nil
	case ViewPerMinute:
		return ViewPerMinute, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// DisplayRow is one table row ready for rendering in a given view mode.
// GP is always the integer games-played count regardless of mode.
type DisplayRow struct {
	PlayerID         int    `json:"player_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	TeamAbbreviation string `json:"team_abbreviation"`
	Position         string `json:"position"`

	GP       int     `json:"gp"`
	Min      float64 `json:"min"`
	Pts      float64 `json:"pts"`
	Reb      float64 `json:"reb"`
	Ast      float64 `json:"ast"`
	Stl      float64 `json:"stl"`
	Blk      float64 `json:"blk"`
	Turnover float64 `json:"turnover"`
	UDFP     float64 `json:"ud_fp"`
	DKFP     float64 `json:"dk_fp"`
}

// Project computes the display fields of a row for one view mode.
//
// Per-game passes the average columns through. Totals passes the total
// columns through, with counting stats rounded to whole numbers. Per-minute
// divides each total by total minutes, guarded so a zero-minute row yields
// zeros instead of NaN; the minutes column itself stays the per-game
// average rather than being divided again.
func Project(row SeasonRow, mode ViewMode) DisplayRow {
	out := DisplayRow{
		PlayerID:         row.PlayerID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		TeamAbbreviation: row.TeamAbbreviation,
		Position:         row.Position,
		GP:               row.GP,
	}

	switch mode {
	case ViewTotals:
		out.Min = sanitize(row.TotalMin)
		out.Pts = math.Round(sanitize(row.TotalPts))
		out.Reb = math.Round(sanitize(row.TotalReb))
		out.Ast = math.Round(sanitize(row.TotalAst))
		out.Stl = math.Round(sanitize(row.TotalStl))
		out.Blk = math.Round(sanitize(row.TotalBlk))
		out.Turnover = math.Round(sanitize(row.TotalTurnover))
		out.UDFP = sanitize(row.TotalUDFP)
		out.DKFP = sanitize(row.TotalDKFP)
	case ViewPerMinute:
		out.Min = sanitize(row.Min)
		out.Pts = perMinute(row.TotalPts, row.TotalMin)
		out.Reb = perMinute(row.TotalReb, row.TotalMin)
		out.Ast = perMinute(row.TotalAst, row.TotalMin)
		out.Stl = perMinute(row.TotalStl, row.TotalMin)
		out.Blk = perMinute(row.TotalBlk, row.TotalMin)
		out.Turnover = perMinute(row.TotalTurnover, row.TotalMin)
		out.UDFP = perMinute(row.TotalUDFP, row.TotalMin)
		out.DKFP = perMinute(row.TotalDKFP, row.TotalMin)
	default: // ViewPerGame
		out.Min = sanitize(row.Min)
		out.Pts = sanitize(row.Pts)
		out.Reb = sanitize(row.Reb)
		out.Ast = sanitize(row.Ast)
		out.Stl = sanitize(row.Stl)
		out.Blk = sanitize(row.Blk)
		out.Turnover = sanitize(row.Turnover)
		out.UDFP = sanitize(row.UDFP)
		out.DKFP = sanitize(row.DKFP)
	}
	return out
}

// ProjectAll projects every row under one view mode.
func ProjectAll(rows []SeasonRow, mode ViewMode) []DisplayRow {
	out := make([]DisplayRow, len(rows))
	for i, row := range rows {
		out[i] = Project(row, mode)
	}
	return out
}

func perMinute(total, totalMin float64) float64 {
	if totalMin <= 0 {
		return 0
	}
	return sanitize(total / totalMin)
}

// sanitize maps NaN and infinities to 0 so display rows always hold
// renderable numbers.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
