package nba

import "sort"

// SeasonRow is the finalized per-(player, season) record persisted to the
// player_season_stats table. Per-game columns hold averages; total_*
// columns hold season sums. Column names match schema.sql.
type SeasonRow struct {
	PlayerID int `json:"player_id" db:"player_id"`
	Season   int `json:"season" db:"season"`

	FirstName        string `json:"first_name" db:"first_name"`
	LastName         string `json:"last_name" db:"last_name"`
	TeamAbbreviation string `json:"team_abbreviation" db:"team_abbreviation"`
	Position         string `json:"position" db:"position"`

	GP       int     `json:"gp" db:"gp"`
	Min      float64 `json:"min" db:"min"`
	Pts      float64 `json:"pts" db:"pts"`
	Reb      float64 `json:"reb" db:"reb"`
	Ast      float64 `json:"ast" db:"ast"`
	Stl      float64 `json:"stl" db:"stl"`
	Blk      float64 `json:"blk" db:"blk"`
	Turnover float64 `json:"turnover" db:"turnover"`
	UDFP     float64 `json:"ud_fp" db:"ud_fp"`
	DKFP     float64 `json:"dk_fp" db:"dk_fp"`

	TotalMin      float64 `json:"total_min" db:"total_min"`
	TotalPts      float64 `json:"total_pts" db:"total_pts"`
	TotalReb      float64 `json:"total_reb" db:"total_reb"`
	TotalAst      float64 `json:"total_ast" db:"total_ast"`
	TotalStl      float64 `json:"total_stl" db:"total_stl"`
	TotalBlk      float64 `json:"total_blk" db:"total_blk"`
	TotalTurnover float64 `json:"total_turnover" db:"total_turnover"`
	TotalFg3m     float64 `json:"total_fg3m" db:"total_fg3m"`
	TotalUDFP     float64 `json:"total_ud_fp" db:"total_ud_fp"`
	TotalDKFP     float64 `json:"total_dk_fp" db:"total_dk_fp"`
}

// Summarize finalizes one aggregate into a persisted row. Returns ok=false
// for aggregates with zero games played; those players get no row at all.
//
// Total fantasy points are the average-line score times games played. For
// Underdog that is exact (the formula is linear). For DraftKings it is a
// deliberate approximation: the double-double bonus is evaluated once on
// the season-average line, not per game log, so a player who crossed bonus
// thresholds in only some games carries an inexact total_dk_fp.
func Summarize(agg *SeasonAggregate, season int) (SeasonRow, bool) {
	gp := agg.GamesPlayed
	if gp == 0 {
		return SeasonRow{}, false
	}

	n := float64(gp)
	avg := StatLine{
		Pts:      agg.TotalPts / n,
		Reb:      agg.TotalReb / n,
		Ast:      agg.TotalAst / n,
		Stl:      agg.TotalStl / n,
		Blk:      agg.TotalBlk / n,
		Turnover: agg.TotalTurnover / n,
		Fg3m:     agg.TotalFg3m / n,
	}
	udFP := UnderdogPoints(avg)
	dkFP := DraftKingsPoints(avg)

	team := agg.Team.Abbreviation
	if team == "" {
		team = placeholder
	}

	return SeasonRow{
		PlayerID:         agg.PlayerID,
		Season:           season,
		FirstName:        agg.FirstName,
		LastName:         agg.LastName,
		TeamAbbreviation: team,
		Position:         agg.Position,

		GP:       gp,
		Min:      agg.TotalMin / n,
		Pts:      avg.Pts,
		Reb:      avg.Reb,
		Ast:      avg.Ast,
		Stl:      avg.Stl,
		Blk:      avg.Blk,
		Turnover: avg.Turnover,
		UDFP:     udFP,
		DKFP:     dkFP,

		TotalMin:      agg.TotalMin,
		TotalPts:      agg.TotalPts,
		TotalReb:      agg.TotalReb,
		TotalAst:      agg.TotalAst,
		TotalStl:      agg.TotalStl,
		TotalBlk:      agg.TotalBlk,
		TotalTurnover: agg.TotalTurnover,
		TotalFg3m:     agg.TotalFg3m,
		TotalUDFP:     udFP * n,
		TotalDKFP:     dkFP * n,
	}, true
}

// SummarizeSeason finalizes every aggregate in the map, sorted by player id
// so repeated runs over the same input produce identical output.
func SummarizeSeason(aggs map[int]*SeasonAggregate, season int) []SeasonRow {
	rows := make([]SeasonRow, 0, len(aggs))
	for _, agg := range aggs {
		if row, ok := Summarize(agg, season); ok {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerID < rows[j].PlayerID })
	return rows
}
