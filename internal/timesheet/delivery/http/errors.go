package http

import (
	"context"
	"errors"
	"net/http"

	"daily-timesheet/internal/session"
	"daily-timesheet/internal/timesheet"
)

var errInvalidState = errors.New("invalid oauth state")

// mapError translates domain errors into an HTTP status.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, timesheet.ErrInvalidDate),
		errors.Is(err, session.ErrEmptyCode),
		errors.Is(err, errInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, timesheet.ErrNotActive),
		errors.Is(err, timesheet.ErrStaleCycle),
		errors.Is(err, session.ErrStaticSession):
		return http.StatusConflict
	case errors.Is(err, timesheet.ErrFetchMeetings),
		errors.Is(err, timesheet.ErrFetchTasks):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
