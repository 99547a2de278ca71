package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "symposium/internal/delivery/http/helpers"
	"symposium/internal/domain"
)

// RegisterParticipantRequest is the request body for POST /participants.
type RegisterParticipantRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Role      string  `json:"role"`
	Country   string  `json:"country"`
}

// Validate implements Validator.
func (p RegisterParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if p.Email != nil && strings.TrimSpace(*p.Email) != "" && !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(*p.Email))) {
		errs = append(errs, "invalid email format")
	}
	if _, err := domain.ParseRole(p.Role); err != nil {
		errs = append(errs, "invalid role")
	}
	if _, err := domain.ParseCountry(p.Country); err != nil {
		errs = append(errs, "invalid country")
	}
	return errs
}

// UpdateParticipantRequest is the request body for PATCH /participants/{participantID}.
// Omitted fields are left unchanged; an explicit empty email clears it.
type UpdateParticipantRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Country   *string `json:"country"`
}

// Validate implements Validator.
func (p UpdateParticipantRequest) Validate() []string {
	var errs []string
	if p.Role != nil {
		if _, err := domain.ParseRole(*p.Role); err != nil {
			errs = append(errs, "invalid role")
		}
	}
	if p.Country != nil {
		if _, err := domain.ParseCountry(*p.Country); err != nil {
			errs = append(errs, "invalid country")
		}
	}
	return errs
}

// ListParticipantsResponse is the response body for GET /participants.
type ListParticipantsResponse struct {
	Participants []*domain.Participant `json:"participants"`
	Pagination   h.PaginationMeta      `json:"pagination"`
}

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
	Stats   domain.StatisticsService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService, stats domain.StatisticsService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
		Stats:   stats,
	}
}

// Register godoc
// @Summary Register a participant
// @Description Register a symposium participant. Email is optional but must be unique when given. Role is one of STUDENT, DOCTOR, SPEAKER, ORGANIZER, ADMIN.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterParticipantRequest true "Participant data"
// @Success 201 {object} helpers.APIResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [post]
func (c *ParticipantController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterParticipantRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	role, _ := domain.ParseRole(req.Role)
	country, _ := domain.ParseCountry(req.Country)
	participant, err := c.Service.Register(r.Context(), req.FirstName, req.LastName, req.Email, role, country)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// Update godoc
// @Summary Update a participant
// @Description Update participant fields. Omitted fields are unchanged; an explicit empty email clears the address.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participantID path int true "Participant ID"
// @Param body body UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [patch]
func (c *ParticipantController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("participantID"), 10, 64)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid participant id")
		return
	}
	var req UpdateParticipantRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.ParticipantUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Role != nil {
		role, _ := domain.ParseRole(*req.Role)
		upd.Role = &role
	}
	if req.Country != nil {
		country, _ := domain.ParseCountry(*req.Country)
		upd.Country = &country
	}
	participant, err := c.Service.Update(r.Context(), id, upd)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, participant)
}

// List godoc
// @Summary List participants
// @Description List participants, optionally ordered by role name (order_by=role). Paginated.
// @Tags participants
// @Produce json
// @Param order_by query string false "Ordering: role or none (default none)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains participants and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [get]
func (c *ParticipantController) List(w http.ResponseWriter, r *http.Request) {
	order := domain.ParticipantOrderNone
	if r.URL.Query().Get("order_by") == string(domain.ParticipantOrderRole) {
		order = domain.ParticipantOrderRole
	}
	params := h.ParsePagination(r)
	participants, total, err := c.Service.List(r.Context(), order, params)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListParticipantsResponse{
		Participants: participants,
		Pagination:   h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ByRole godoc
// @Summary List participants by role
// @Description List all participants with the given role. Order is stable by participant id.
// @Tags participants
// @Produce json
// @Param role path string true "Role (STUDENT, DOCTOR, SPEAKER, ORGANIZER, ADMIN)"
// @Success 200 {object} helpers.APIResponse "data contains the participants"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/by-role/{role} [get]
func (c *ParticipantController) ByRole(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(r.PathValue("role"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid role")
		return
	}
	participants, err := c.Stats.ParticipantsByRole(r.Context(), role)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, participants)
}

// ByCountry godoc
// @Summary List participants by country
// @Description List all participants from the given country. Order is stable by participant id.
// @Tags participants
// @Produce json
// @Param country path string true "Country"
// @Success 200 {object} helpers.APIResponse "data contains the participants"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/by-country/{country} [get]
func (c *ParticipantController) ByCountry(w http.ResponseWriter, r *http.Request) {
	country, err := domain.ParseCountry(r.PathValue("country"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid country")
		return
	}
	participants, err := c.Stats.ParticipantsByCountry(r.Context(), country)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, participants)
}
