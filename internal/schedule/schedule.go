// Package schedule runs the periodic season refresh as a Go ticker.
// Replaces an external cron trigger — the API server is already a
// persistent, long-running process.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/hooprank/hooprank-data/internal/update"
)

// Updater runs a full season refresh.
type Updater interface {
	UpdateSeason(ctx context.Context, season int) (update.Result, error)
}

// Start refreshes the season on the given interval until ctx is cancelled.
// Blocks; intended to be called with `go`. A zero or negative interval
// disables the loop entirely.
func Start(ctx context.Context, updater Updater, season int, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	logger.Info("Stats refresh scheduler started", "season", season, "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			result, err := updater.UpdateSeason(ctx, season)
			if err != nil {
				logger.Error("Scheduled refresh failed", "season", season, "error", err)
				continue
			}
			logger.Info("Scheduled refresh complete", "summary", result.Summary())
		case <-ctx.Done():
			logger.Info("Stats refresh scheduler stopped")
			return
		}
	}
}
