// Command ingest is the HoopRank stats ingestion CLI.
//
// Usage:
//
//	hooprank-ingest update --season 2025
//	hooprank-ingest seasons
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hooprank/hooprank-data/internal/config"
	"github.com/hooprank/hooprank-data/internal/db"
	"github.com/hooprank/hooprank-data/internal/provider/bdl"
	"github.com/hooprank/hooprank-data/internal/store"
	"github.com/hooprank/hooprank-data/internal/update"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "hooprank-ingest",
		Short: "HoopRank stats ingestion CLI",
	}

	root.AddCommand(updateCmd())
	root.AddCommand(seasonsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// update command
// --------------------------------------------------------------------------

func updateCmd() *cobra.Command {
	var season int
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch a season from BallDontLie and upsert recomputed season rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if cfg.BDLAPIKey == "" {
					return fmt.Errorf("BALLDONTLIE_API_KEY is required")
				}
				if season == 0 {
					season = cfg.CurrentSeason
				}
				handler := bdl.NewNBAHandler(cfg.BDLAPIKey, logger)
				result, err := update.Run(ctx, handler, store.New(pool.Pool), season, logger)
				if err != nil {
					return err
				}
				logger.Info("Update finished", "summary", result.Summary())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season start year (defaults to NBA_SEASON)")
	return cmd
}

// --------------------------------------------------------------------------
// seasons command
// --------------------------------------------------------------------------

func seasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List seasons with persisted rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				seasons, err := store.New(pool.Pool).AvailableSeasons(ctx)
				if err != nil {
					return err
				}
				for _, s := range seasons {
					fmt.Printf("%d\n", s)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, DB connection, and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
