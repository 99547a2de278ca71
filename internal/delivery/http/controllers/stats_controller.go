package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	h "symposium/internal/delivery/http/helpers"
	"symposium/internal/domain"
)

type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatisticsService
}

func NewStatsController(logger *slog.Logger, svc domain.StatisticsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// TopSpeakers godoc
// @Summary Top speakers leaderboard
// @Description Rank participants with role SPEAKER by number of presentations, descending, ties broken by ascending participant id. Without a limit the full ranking is returned.
// @Tags stats
// @Produce json
// @Param limit query int false "Maximum number of rows"
// @Success 200 {object} helpers.APIResponse "data contains the ranking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stats/top-speakers [get]
func (c *StatsController) TopSpeakers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	stats, err := c.Service.TopSpeakers(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, stats)
}

// CountByHall godoc
// @Summary Count presentations in a hall
// @Description Number of presentations scheduled in the hall. Unknown halls count as zero.
// @Tags stats
// @Produce json
// @Param hallID path int true "Hall ID"
// @Success 200 {object} helpers.APIResponse "data contains hall_id and count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls/{hallID}/presentations/count [get]
func (c *StatsController) CountByHall(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(r.PathValue("hallID"), 10, 64)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid hall id")
		return
	}
	count, err := c.Service.CountPresentations(r.Context(), hallID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{
		"hall_id": hallID,
		"count":   count,
	})
}
