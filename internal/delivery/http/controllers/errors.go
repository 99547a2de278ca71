package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "symposium/internal/delivery/http/helpers"
	"symposium/internal/domain"
)

// writeDomainError translates a service error into the API error envelope.
// Scheduling and uniqueness violations map to 409 so callers can distinguish
// them from bad input; anything unexpected is logged and becomes a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateTopicScheduling):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "topic is already scheduled")
	case errors.Is(err, domain.ErrHallTimeConflict):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "hall is already booked at this time")
	case errors.Is(err, domain.ErrDuplicateTopicName):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "topic name already exists")
	case errors.Is(err, domain.ErrDuplicateParticipantEmail):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "participant email already in use")
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already in use")
	case errors.Is(err, domain.ErrConstraintViolation):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "conflicting concurrent update")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid input")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}
