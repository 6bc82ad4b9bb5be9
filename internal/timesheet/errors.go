package timesheet

import "errors"

// Domain-specific errors for the timesheet package.
var (
	ErrMissingCredentials = errors.New("session credentials are not configured")
	ErrFetchMeetings      = errors.New("failed to fetch meeting events")
	ErrFetchTasks         = errors.New("failed to fetch task events")
	ErrNotActive          = errors.New("timesheet is not active")
	ErrStaleCycle         = errors.New("load cycle superseded by a newer one")
	ErrInvalidDate        = errors.New("invalid date")
)

const (
	ReasonMissingStart = "missing start time"
	ReasonMissingEnd   = "missing end time"
)
