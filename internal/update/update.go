// Package update orchestrates a full season refresh: fetch every stat line
// from the upstream provider, fold them into season aggregates, finalize
// rows, and upsert them. Nothing is written until fetching and
// summarization have fully completed, so a failed run never leaves a
// partially updated season behind.
package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hooprank/hooprank-data/internal/nba"
)

// Failure categories callers can test with errors.Is.
var (
	ErrFetch = errors.New("source fetch failed")
	ErrStore = errors.New("store write failed")
)

// Source supplies the complete set of per-game stat lines for a season.
type Source interface {
	GameStats(ctx context.Context, season int) ([]nba.GameStat, error)
}

// Store persists finalized season rows.
type Store interface {
	UpsertSeasonRows(ctx context.Context, rows []nba.SeasonRow) error
}

// Result tracks counts from one refresh run.
type Result struct {
	Season       int
	StatLines    int
	Players      int
	RowsUpserted int
	Duration     time.Duration
}

// Summary returns a human-readable summary of the run.
func (r Result) Summary() string {
	return fmt.Sprintf("season=%d stat_lines=%d players=%d rows_upserted=%d duration=%s",
		r.Season, r.StatLines, r.Players, r.RowsUpserted, r.Duration.Round(time.Millisecond))
}

// Run executes one full refresh for a season. Re-running with the same
// upstream data produces identical rows, so the store's conflict-key upsert
// is a pure overwrite.
func Run(ctx context.Context, src Source, st Store, season int, logger *slog.Logger) (Result, error) {
	start := time.Now()
	result := Result{Season: season}

	logger.Info("Fetching season stat lines", "season", season)
	stats, err := src.GameStats(ctx, season)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	result.StatLines = len(stats)

	aggs := nba.AggregateSeason(stats)
	result.Players = len(aggs)
	rows := nba.SummarizeSeason(aggs, season)

	logger.Info("Season processed",
		"season", season,
		"stat_lines", result.StatLines,
		"players", result.Players,
		"rows", len(rows))

	if len(rows) > 0 {
		if err := st.UpsertSeasonRows(ctx, rows); err != nil {
			return result, fmt.Errorf("%w: %v", ErrStore, err)
		}
		result.RowsUpserted = len(rows)
	} else {
		logger.Info("No rows to upsert", "season", season)
	}

	result.Duration = time.Since(start)
	logger.Info("Season refresh finished", "summary", result.Summary())
	return result, nil
}

// Service bundles a source and store so callers hold one refresh handle.
type Service struct {
	Source Source
	Store  Store
	Logger *slog.Logger
}

// UpdateSeason runs a full refresh for the season.
func (s *Service) UpdateSeason(ctx context.Context, season int) (Result, error) {
	return Run(ctx, s.Source, s.Store, season, s.Logger)
}
