package repository

import "time"

// ListEventsOptions selects the events of one calendar in [TimeMin, TimeMax).
type ListEventsOptions struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	SingleEvents bool   // expand recurring events into instances
	ShowDeleted  bool   // include cancelled events
	OrderBy      string // OrderByStartTime
	MaxAttendees int    // 0 means no limit
}

const OrderByStartTime = "startTime"

// DayQuery returns the options every load cycle uses for a calendar.
func DayQuery(calendarID string, timeMin, timeMax time.Time) ListEventsOptions {
	return ListEventsOptions{
		CalendarID:   calendarID,
		TimeMin:      timeMin,
		TimeMax:      timeMax,
		SingleEvents: true,
		ShowDeleted:  false,
		OrderBy:      OrderByStartTime,
		MaxAttendees: 1,
	}
}
