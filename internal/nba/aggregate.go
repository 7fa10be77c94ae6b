package nba

// dateSentinel sorts before any real game date, so the first dated record
// always wins the initial team attribution.
const dateSentinel = "1900-01-01"

// placeholder marks missing positions and team abbreviations.
const placeholder = "N/A"

// SeasonAggregate is the running per-player fold state for one season.
// Identity fields are captured from the first qualifying record; sums and
// games played grow monotonically as records fold in; Team tracks whichever
// team appeared on the latest-dated game seen so far.
type SeasonAggregate struct {
	PlayerID  int
	FirstName string
	LastName  string
	Position  string
	Team      Team

	GamesPlayed   int
	TotalMin      float64
	TotalPts      float64
	TotalReb      float64
	TotalAst      float64
	TotalStl      float64
	TotalBlk      float64
	TotalTurnover float64
	TotalFg3m     float64

	LatestGameDate string
}

// AggregateSeason folds raw stat lines into one aggregate per player.
//
// A record qualifies only when it carries a player id, a present minutes
// value, and strictly positive parsed minutes; everything else is skipped
// without touching any aggregate. Team attribution follows the maximum
// game date rather than record order, so any permutation of the input
// yields the same result.
func AggregateSeason(stats []GameStat) map[int]*SeasonAggregate {
	aggs := make(map[int]*SeasonAggregate)
	for _, stat := range stats {
		fold(aggs, stat)
	}
	return aggs
}

func fold(aggs map[int]*SeasonAggregate, stat GameStat) {
	if stat.Player == nil || stat.Player.ID == 0 {
		return
	}
	if !HasMinutes(stat.Min) {
		return
	}
	minutes := ParseMinutes(stat.Min)
	if minutes <= 0 {
		return
	}

	agg, ok := aggs[stat.Player.ID]
	if !ok {
		agg = newAggregate(stat)
		aggs[stat.Player.ID] = agg
	}

	agg.GamesPlayed++
	agg.TotalMin += minutes
	agg.TotalPts += stat.Pts
	agg.TotalReb += stat.Reb
	agg.TotalAst += stat.Ast
	agg.TotalStl += stat.Stl
	agg.TotalBlk += stat.Blk
	agg.TotalTurnover += stat.Turnover
	agg.TotalFg3m += stat.Fg3m

	gameDate := ""
	if stat.Game != nil {
		gameDate = stat.Game.Date
	}
	if gameDate != "" && gameDate > agg.LatestGameDate {
		agg.LatestGameDate = gameDate
		if stat.Team != nil {
			agg.Team = *stat.Team
		}
	} else if agg.LatestGameDate == "" && stat.Team != nil {
		// Fallback in case the sentinel was ever lost; keeps the
		// aggregate from finishing with no team at all.
		agg.Team = *stat.Team
	}
}

func newAggregate(stat GameStat) *SeasonAggregate {
	agg := &SeasonAggregate{
		PlayerID:       stat.Player.ID,
		FirstName:      stat.Player.FirstName,
		LastName:       stat.Player.LastName,
		Position:       stat.Player.Position,
		Team:           Team{Abbreviation: placeholder},
		LatestGameDate: dateSentinel,
	}
	if agg.Position == "" {
		agg.Position = placeholder
	}
	if stat.Team != nil {
		agg.Team = *stat.Team
	}
	return agg
}
