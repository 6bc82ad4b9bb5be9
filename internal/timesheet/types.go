package timesheet

import "time"

// --- Input records ---

// CalendarEvent is an event as returned by a calendar source. It is read-only
// to the engine and lives for one load cycle.
type CalendarEvent struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Attendees []Attendee
}

// Attendee carries a response status: accepted, declined, tentative, needsAction, ...
type Attendee struct {
	Email          string
	ResponseStatus string
}

// CategorizedEvent is a CalendarEvent whose title may have been split into a
// category and a residual title. An empty Category means none.
type CategorizedEvent struct {
	CalendarEvent
	Category string
}

// --- Output records ---

// CategoryTag is the badge shown next to a row label.
type CategoryTag struct {
	Name     string
	Linkable bool
}

// AggregatedRow is one display row: every event sharing Key collapses into it.
type AggregatedRow struct {
	Key                string
	Label              string
	CategoryTag        *CategoryTag
	TotalDurationHours float64
	IsMultiple         bool
}

// SkippedEvent records an event left out of aggregation and why.
type SkippedEvent struct {
	ID     string
	Reason string
}

// AggregationResult holds rows in first-seen key order plus the grand total.
type AggregationResult struct {
	Rows            []AggregatedRow
	GrandTotalHours float64
	Skipped         []SkippedEvent
}

// Target names the table a result is rendered into.
type Target string

const (
	TargetMeetings Target = "meetings"
	TargetTasks    Target = "tasks"
)

// --- UseCase inputs/outputs ---

type LoadInput struct {
	Date time.Time
}

type LoadOutput struct {
	Date     time.Time
	Meetings AggregationResult
	Tasks    AggregationResult
}

// Config is built once at startup and handed to the usecase and controller.
type Config struct {
	MeetingCalendarID string
	TaskCalendarID    string
	TicketPrefix      string
	TicketURL         string
}
