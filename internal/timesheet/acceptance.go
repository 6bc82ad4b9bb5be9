package timesheet

import "strings"

const responseAccepted = "accepted"

// IsAccepted reports whether a meeting counts as attended. Events without
// attendees are accepted. Otherwise only the first attendee is consulted:
// the calendar owner is assumed to be listed first, which holds when the
// list is requested with maxAttendees=1.
func IsAccepted(ev CalendarEvent) bool {
	if len(ev.Attendees) == 0 {
		return true
	}
	return strings.EqualFold(ev.Attendees[0].ResponseStatus, responseAccepted)
}

// FilterAccepted keeps the accepted events in their original order.
func FilterAccepted(events []CalendarEvent) []CalendarEvent {
	out := make([]CalendarEvent, 0, len(events))
	for _, ev := range events {
		if IsAccepted(ev) {
			out = append(out, ev)
		}
	}
	return out
}
