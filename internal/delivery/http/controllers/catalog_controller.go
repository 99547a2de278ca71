package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "symposium/internal/delivery/http/helpers"
	"symposium/internal/domain"
)

// CreateTopicRequest is the request body for POST /topics.
type CreateTopicRequest struct {
	Name         string  `json:"name"`
	PresenterIDs []int64 `json:"presenter_ids"`
}

// Validate implements Validator.
func (t CreateTopicRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateHotelRequest is the request body for POST /hotels.
type CreateHotelRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Validate implements Validator.
func (hr CreateHotelRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(hr.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateHallRequest is the request body for POST /halls.
type CreateHallRequest struct {
	Name    string `json:"name"`
	HotelID int64  `json:"hotel_id"`
}

// Validate implements Validator.
func (hr CreateHallRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(hr.Name) == "" {
		errs = append(errs, "name is required")
	}
	if hr.HotelID == 0 {
		errs = append(errs, "hotel_id is required")
	}
	return errs
}

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTopic godoc
// @Summary Create a topic
// @Description Create a topic with a globally unique name and an optional set of presenters.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTopicRequest true "Topic data"
// @Success 201 {object} helpers.APIResponse "data contains the created topic"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /topics [post]
func (c *CatalogController) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	topic, err := c.Service.CreateTopic(r.Context(), req.Name, req.PresenterIDs)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, topic)
}

// ListTopics godoc
// @Summary List topics
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the topics"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /topics [get]
func (c *CatalogController) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := c.Service.ListTopics(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, topics)
}

// CreateHotel godoc
// @Summary Create a hotel
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateHotelRequest true "Hotel data"
// @Success 201 {object} helpers.APIResponse "data contains the created hotel"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hotels [post]
func (c *CatalogController) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req CreateHotelRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	hotel, err := c.Service.CreateHotel(r.Context(), req.Name, req.Address)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, hotel)
}

// ListHotels godoc
// @Summary List hotels
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the hotels"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hotels [get]
func (c *CatalogController) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := c.Service.ListHotels(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, hotels)
}

// CreateHall godoc
// @Summary Create a conference hall
// @Description Create a conference hall inside an existing hotel.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateHallRequest true "Hall data"
// @Success 201 {object} helpers.APIResponse "data contains the created hall"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls [post]
func (c *CatalogController) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req CreateHallRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	hall, err := c.Service.CreateHall(r.Context(), req.Name, req.HotelID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, hall)
}

// ListHalls godoc
// @Summary List conference halls
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the halls"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls [get]
func (c *CatalogController) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := c.Service.ListHalls(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, halls)
}
