package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hooprank/hooprank-data/internal/api/respond"
	"github.com/hooprank/hooprank-data/internal/cache"
	"github.com/hooprank/hooprank-data/internal/nba"
)

// GetSeasonStats returns all season rows for a season.
// @Summary Get season stats
// @Description Returns every player season row for a season. Without a view parameter the raw persisted rows (averages + totals) are returned; with view=per_game|totals|per_minute each row is projected into display fields for that mode.
// @Tags stats
// @Produce json
// @Param season query int false "Season start year (defaults to current)"
// @Param view query string false "View mode" Enums(per_game, totals, per_minute)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /nba/season-stats [get]
func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	season := h.cfg.CurrentSeason
	if s := r.URL.Query().Get("season"); s != "" {
		var err error
		season, err = strconv.Atoi(s)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must be an integer")
			return
		}
		if season < 2000 || season > time.Now().Year()+1 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON",
				fmt.Sprintf("Season must be between 2000 and %d", time.Now().Year()+1))
			return
		}
	}

	rawView := r.URL.Query().Get("view")
	view, err := nba.ParseViewMode(rawView)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_VIEW",
			"view must be per_game, totals, or per_minute")
		return
	}

	ttl := h.seasonTTL(season)
	cacheKey := fmt.Sprintf("season_stats:%d:%s", season, rawView)

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	rows, err := h.stats.SeasonRows(r.Context(), season)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to load season stats")
		return
	}

	payload := map[string]interface{}{"season": season}
	if rawView == "" {
		// Raw persisted rows; the client applies its own projection.
		payload["data"] = rows
	} else {
		payload["view"] = view
		payload["data"] = nba.ProjectAll(rows, view)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED",
			"Failed to encode season stats")
		return
	}

	etag := h.cache.Set(cacheKey, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

// GetAvailableSeasons returns seasons that have persisted rows.
// @Summary Get available seasons
// @Description Returns the list of seasons with at least one persisted row, newest first.
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} respond.ErrorResponse
// @Router /nba/seasons [get]
func (h *Handler) GetAvailableSeasons(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "available_seasons"
	ttl := cache.TTLCurrentSeason

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	seasons, err := h.stats.AvailableSeasons(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to load available seasons")
		return
	}

	data, err := json.Marshal(map[string]interface{}{"seasons": seasons})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED",
			"Failed to encode seasons")
		return
	}

	etag := h.cache.Set(cacheKey, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

// seasonTTL picks the cache TTL for a season's rows.
func (h *Handler) seasonTTL(season int) time.Duration {
	if season >= h.cfg.CurrentSeason {
		return cache.TTLCurrentSeason
	}
	return cache.TTLHistorical
}
