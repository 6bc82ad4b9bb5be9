package timesheet_test

import (
	"testing"

	"daily-timesheet/internal/timesheet"
)

func TestIsAccepted(t *testing.T) {
	attendees := func(statuses ...string) []timesheet.Attendee {
		out := make([]timesheet.Attendee, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, timesheet.Attendee{ResponseStatus: s})
		}
		return out
	}

	tests := []struct {
		name  string
		event timesheet.CalendarEvent
		want  bool
	}{
		{name: "No attendees", event: timesheet.CalendarEvent{}, want: true},
		{name: "Accepted", event: timesheet.CalendarEvent{Attendees: attendees("accepted")}, want: true},
		{name: "Case insensitive", event: timesheet.CalendarEvent{Attendees: attendees("ACCEPTED")}, want: true},
		{name: "Declined", event: timesheet.CalendarEvent{Attendees: attendees("declined")}, want: false},
		{name: "Tentative", event: timesheet.CalendarEvent{Attendees: attendees("tentative")}, want: false},
		{name: "Needs action", event: timesheet.CalendarEvent{Attendees: attendees("needsAction")}, want: false},
		{name: "Only first attendee counts", event: timesheet.CalendarEvent{Attendees: attendees("declined", "accepted")}, want: false},
		{name: "First accepted, others declined", event: timesheet.CalendarEvent{Attendees: attendees("accepted", "declined")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timesheet.IsAccepted(tt.event); got != tt.want {
				t.Errorf("IsAccepted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterAccepted(t *testing.T) {
	events := []timesheet.CalendarEvent{
		{ID: "a"},
		{ID: "b", Attendees: []timesheet.Attendee{{ResponseStatus: "declined"}}},
		{ID: "c", Attendees: []timesheet.Attendee{{ResponseStatus: "Accepted"}}},
	}

	got := timesheet.FilterAccepted(events)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("unexpected filtered events: %+v", got)
	}
}
