package repository

import (
	"context"

	"daily-timesheet/internal/timesheet"
)

// EventRepository is the calendar query service consumed by the load cycle.
type EventRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]timesheet.CalendarEvent, error)
}
