package repository

import "errors"

var (
	ErrFailedToList     = errors.New("failed to list calendar events")
	ErrMissingCalendar  = errors.New("calendar id is required")
	ErrUnsupportedOrder = errors.New("unsupported order")
)
