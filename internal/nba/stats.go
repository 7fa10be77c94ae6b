// Package nba holds the season aggregation and fantasy scoring engine:
// parsing raw per-game stat lines, folding them into per-player season
// aggregates, finalizing persisted season rows, and projecting rows into
// the per-game / totals / per-minute display views.
//
// Everything in this package is pure computation over in-memory values.
// Fetching, persistence, and HTTP live in their own packages.
package nba

import "encoding/json"

// Player identifies a player on a raw stat line.
type Player struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

// Team identifies the team a stat line was recorded for.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

// Game carries the game metadata consumed from a stat line.
// Date is an ISO "YYYY-MM-DD..." string, comparable lexicographically.
type Game struct {
	Date string `json:"date"`
}

// GameStat is one raw per-game stat line as delivered by BallDontLie.
// Numeric fields absent from the payload decode to zero, which is exactly
// the or-zero coalescing the scoring formulas rely on. Min stays raw JSON
// because upstream sends it as a clock string, a bare number, a numeric
// string, or null depending on the game.
type GameStat struct {
	Player   *Player         `json:"player"`
	Team     *Team           `json:"team"`
	Game     *Game           `json:"game"`
	Min      json.RawMessage `json:"min"`
	Pts      float64         `json:"pts"`
	Reb      float64         `json:"reb"`
	Ast      float64         `json:"ast"`
	Stl      float64         `json:"stl"`
	Blk      float64         `json:"blk"`
	Turnover float64         `json:"turnover"`
	Fg3m     float64         `json:"fg3m"`
}

// Line returns the stat line as a flat scoring tuple.
func (g GameStat) Line() StatLine {
	return StatLine{
		Pts:      g.Pts,
		Reb:      g.Reb,
		Ast:      g.Ast,
		Stl:      g.Stl,
		Blk:      g.Blk,
		Turnover: g.Turnover,
		Fg3m:     g.Fg3m,
	}
}
