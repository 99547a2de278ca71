package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	h "symposium/internal/delivery/http/helpers"
	"symposium/internal/domain"
)

// startTimeLayouts are the accepted start_time formats, in order of preference.
var startTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}

func parseStartTime(s string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SchedulePresentationRequest is the request body for POST /presentations.
// A non-zero id updates the existing presentation instead of creating one.
// hall_id and start_time may be omitted for an unscheduled presentation.
type SchedulePresentationRequest struct {
	ID             int64   `json:"id"`
	TopicID        int64   `json:"topic_id"`
	HallID         *int64  `json:"hall_id"`
	StartTime      *string `json:"start_time"`
	ParticipantIDs []int64 `json:"participant_ids"`
}

// Validate implements Validator.
func (p SchedulePresentationRequest) Validate() []string {
	var errs []string
	if p.TopicID == 0 {
		errs = append(errs, "topic_id is required")
	}
	if p.StartTime != nil {
		if _, ok := parseStartTime(*p.StartTime); !ok {
			errs = append(errs, "start_time must be RFC3339 or \"2006-01-02 15:04\"")
		}
	}
	return errs
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.SchedulingService
}

func NewScheduleController(logger *slog.Logger, svc domain.SchedulingService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// Schedule godoc
// @Summary Schedule or update a presentation
// @Description Assign a topic to a hall and time slot with a set of participants. A topic can be presented at most once, and a hall hosts at most one presentation per start instant; violations return 409. Start time is truncated to the minute.
// @Tags presentations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SchedulePresentationRequest true "Candidate assignment"
// @Success 201 {object} helpers.APIResponse "data contains the presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations [post]
func (c *ScheduleController) Schedule(w http.ResponseWriter, r *http.Request) {
	var req SchedulePresentationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	input := domain.ScheduleInput{
		ID:             req.ID,
		TopicID:        req.TopicID,
		HallID:         req.HallID,
		ParticipantIDs: req.ParticipantIDs,
	}
	if req.StartTime != nil {
		t, _ := parseStartTime(*req.StartTime)
		input.StartTime = &t
	}
	presentation, err := c.Service.Schedule(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	status := http.StatusCreated
	if req.ID != 0 {
		status = http.StatusOK
	}
	h.WriteJSONSuccess(w, status, presentation)
}

// List godoc
// @Summary List presentations
// @Description List all presentations as topic name plus start time.
// @Tags presentations
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the presentations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations [get]
func (c *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, items)
}

// GetByID godoc
// @Summary Get a presentation
// @Tags presentations
// @Produce json
// @Param presentationID path int true "Presentation ID"
// @Success 200 {object} helpers.APIResponse "data contains the presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{presentationID} [get]
func (c *ScheduleController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("presentationID"), 10, 64)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid presentation id")
		return
	}
	presentation, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, presentation)
}

// Delete godoc
// @Summary Delete a presentation
// @Description Unschedule a presentation. There is no invariant to check; deleting an unknown presentation returns 404.
// @Tags presentations
// @Produce json
// @Security BearerAuth
// @Param presentationID path int true "Presentation ID"
// @Success 200 {object} helpers.APIResponse "data contains deleted: true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{presentationID} [delete]
func (c *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("presentationID"), 10, 64)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid presentation id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
