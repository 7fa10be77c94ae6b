package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/hooprank/hooprank-data/internal/nba"
)

const nbaBaseURL = "https://api.balldontlie.io/v1"

// NBAHandler fetches NBA game-level stat lines from BallDontLie.
type NBAHandler struct {
	client *client
	logger *slog.Logger
}

// NewNBAHandler creates an NBA handler with the given API key.
func NewNBAHandler(apiKey string, logger *slog.Logger) *NBAHandler {
	return newNBAHandler(nbaBaseURL, apiKey, logger)
}

func newNBAHandler(baseURL, apiKey string, logger *slog.Logger) *NBAHandler {
	return &NBAHandler{
		client: newClient(baseURL, apiKey, 600, logger),
		logger: logger,
	}
}

// GameStats fetches every regular-season stat line for a season, walking
// BDL's cursor pagination until it is exhausted. Postseason games are
// excluded at the source. The full materialized slice is returned so
// aggregation only ever runs over a complete season.
func (h *NBAHandler) GameStats(ctx context.Context, season int) ([]nba.GameStat, error) {
	params := url.Values{
		"seasons[]":  {strconv.Itoa(season)},
		"postseason": {"false"},
		"per_page":   {"100"},
	}

	var all []nba.GameStat
	page := 0

	for {
		resp, err := h.client.get(ctx, "/stats", params)
		if err != nil {
			return nil, fmt.Errorf("fetch NBA stats page %d: %w", page+1, err)
		}
		page++

		var batch []nba.GameStat
		if err := json.Unmarshal(resp.Data, &batch); err != nil {
			return nil, fmt.Errorf("decode NBA stats page %d: %w", page, err)
		}
		all = append(all, batch...)

		if page%25 == 0 {
			h.logger.Info("NBA stats fetch progress", "season", season, "pages", page, "stat_lines", len(all))
		}

		if resp.Meta.NextCursor == nil || len(batch) == 0 {
			break
		}
		params.Set("cursor", strconv.Itoa(*resp.Meta.NextCursor))
	}

	h.logger.Info("NBA stats fetch complete", "season", season, "pages", page, "stat_lines", len(all))
	return all, nil
}
