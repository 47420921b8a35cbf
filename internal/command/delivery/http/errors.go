package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/pkg/response"
)

// mapErrorStatus translates domain errors into HTTP statuses.
func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, command.ErrEmptyInput), errors.Is(err, command.ErrMissingCommand):
		return http.StatusBadRequest
	case errors.Is(err, calendar.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, calendar.ErrInvalidDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, calendar.ErrSaveFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) writeError(c *gin.Context, err error) {
	status := mapErrorStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err)
}
