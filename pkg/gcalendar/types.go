package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// StartTime/EndTime are zero when the API returned no dateTime (all-day items).
type Event struct {
	ID        string
	Summary   string
	Status    string // confirmed, tentative, cancelled
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool
	Attendees []Attendee
}

// Attendee is one entry of an event's attendee list.
type Attendee struct {
	Email          string
	ResponseStatus string // accepted, declined, tentative, needsAction
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	SingleEvents bool
	ShowDeleted  bool
	OrderBy      string // "startTime" requires SingleEvents
	MaxAttendees int64
}

const (
	OrderByStartTime = "startTime"
	DefaultCalendar  = "primary"
	StatusCancelled  = "cancelled"
)
