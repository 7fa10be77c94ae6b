// Package store persists finalized season rows to Postgres and reads them
// back for the API. Upserts fully replace a row's values on its
// (player_id, season) conflict key — a refresh run is a pure overwrite,
// never a merge.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooprank/hooprank-data/internal/config"
	"github.com/hooprank/hooprank-data/internal/nba"
)

// Store provides access to the player_season_stats table.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const upsertSQL = `
	INSERT INTO ` + config.SeasonStatsTable + ` (
		player_id, season, first_name, last_name, team_abbreviation, position,
		gp, min, pts, reb, ast, stl, blk, turnover, ud_fp, dk_fp,
		total_min, total_pts, total_reb, total_ast, total_stl, total_blk,
		total_turnover, total_fg3m, total_ud_fp, total_dk_fp
	) VALUES (
		$1,$2,$3,$4,$5,$6,
		$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,
		$17,$18,$19,$20,$21,$22,$23,$24,$25,$26
	)
	ON CONFLICT (player_id, season) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		team_abbreviation = EXCLUDED.team_abbreviation,
		position = EXCLUDED.position,
		gp = EXCLUDED.gp,
		min = EXCLUDED.min,
		pts = EXCLUDED.pts,
		reb = EXCLUDED.reb,
		ast = EXCLUDED.ast,
		stl = EXCLUDED.stl,
		blk = EXCLUDED.blk,
		turnover = EXCLUDED.turnover,
		ud_fp = EXCLUDED.ud_fp,
		dk_fp = EXCLUDED.dk_fp,
		total_min = EXCLUDED.total_min,
		total_pts = EXCLUDED.total_pts,
		total_reb = EXCLUDED.total_reb,
		total_ast = EXCLUDED.total_ast,
		total_stl = EXCLUDED.total_stl,
		total_blk = EXCLUDED.total_blk,
		total_turnover = EXCLUDED.total_turnover,
		total_fg3m = EXCLUDED.total_fg3m,
		total_ud_fp = EXCLUDED.total_ud_fp,
		total_dk_fp = EXCLUDED.total_dk_fp,
		updated_at = NOW()`

// UpsertSeasonRows writes every row, batched per round trip.
func (s *Store) UpsertSeasonRows(ctx context.Context, rows []nba.SeasonRow) error {
	const batchSize = 500

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		batch := &pgx.Batch{}
		for _, row := range rows[start:end] {
			batch.Queue(upsertSQL,
				row.PlayerID, row.Season, row.FirstName, row.LastName,
				row.TeamAbbreviation, row.Position,
				row.GP, row.Min, row.Pts, row.Reb, row.Ast, row.Stl,
				row.Blk, row.Turnover, row.UDFP, row.DKFP,
				row.TotalMin, row.TotalPts, row.TotalReb, row.TotalAst,
				row.TotalStl, row.TotalBlk, row.TotalTurnover, row.TotalFg3m,
				row.TotalUDFP, row.TotalDKFP,
			)
		}

		br := s.pool.SendBatch(ctx, batch)
		var batchErr error
		for i := start; i < end; i++ {
			if _, err := br.Exec(); err != nil && batchErr == nil {
				batchErr = fmt.Errorf("upsert player %d season %d: %w",
					rows[i].PlayerID, rows[i].Season, err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("close upsert batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}
	return nil
}

// SeasonRows returns every persisted row for a season, unfiltered and
// unsorted. Sorting and view projection happen downstream.
func (s *Store) SeasonRows(ctx context.Context, season int) ([]nba.SeasonRow, error) {
	rows, err := s.pool.Query(ctx, "season_rows", season)
	if err != nil {
		return nil, fmt.Errorf("query season %d rows: %w", season, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[nba.SeasonRow])
	if err != nil {
		return nil, fmt.Errorf("scan season %d rows: %w", season, err)
	}
	return out, nil
}

// AvailableSeasons lists seasons with at least one persisted row, newest
// first.
func (s *Store) AvailableSeasons(ctx context.Context) ([]int, error) {
	rows, err := s.pool.Query(ctx, "available_seasons")
	if err != nil {
		return nil, fmt.Errorf("query available seasons: %w", err)
	}
	seasons, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("scan available seasons: %w", err)
	}
	return seasons, nil
}
