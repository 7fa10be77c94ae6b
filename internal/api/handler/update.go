package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hooprank/hooprank-data/internal/api/respond"
	"github.com/hooprank/hooprank-data/internal/update"
)

// TriggerUpdate runs a full season refresh.
// @Summary Trigger a season stats refresh
// @Description Fetches every stat line for the season from the upstream provider, recomputes season rows, and upserts them. Guarded by a bearer secret so only the scheduler or an operator can trigger it.
// @Tags update
// @Produce json
// @Param season query int false "Season start year (defaults to current)"
// @Param Authorization header string true "Bearer CRON_SECRET"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /cron/update-stats [post]
func (h *Handler) TriggerUpdate(w http.ResponseWriter, r *http.Request) {
	if h.cfg.CronSecret == "" {
		respond.WriteError(w, http.StatusInternalServerError, "CONFIG_ERROR",
			"CRON_SECRET is not configured")
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+h.cfg.CronSecret {
		respond.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}
	if h.updater == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "UPDATE_DISABLED",
			"No upstream provider configured")
		return
	}

	season := h.cfg.CurrentSeason
	if s := r.URL.Query().Get("season"); s != "" {
		var err error
		season, err = strconv.Atoi(s)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must be an integer")
			return
		}
	}

	result, err := h.updater.UpdateSeason(r.Context(), season)
	if err != nil {
		switch {
		case errors.Is(err, update.ErrFetch):
			respond.WriteError(w, http.StatusBadGateway, "SOURCE_FETCH_FAILED",
				"Failed to fetch data from source API")
		case errors.Is(err, update.ErrStore):
			respond.WriteError(w, http.StatusInternalServerError, "STORE_WRITE_FAILED",
				"Failed to write season rows")
		default:
			respond.WriteError(w, http.StatusInternalServerError, "UPDATE_FAILED",
				"Season refresh failed")
		}
		return
	}

	// Fresh rows landed; drop cached responses so readers see them now.
	h.cache.Clear()

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"season":        result.Season,
		"stat_lines":    result.StatLines,
		"players":       result.Players,
		"rows_upserted": result.RowsUpserted,
		"duration":      result.Duration.Round(time.Millisecond).String(),
	})
}
