package ics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/repository"
	pkgIcs "daily-timesheet/pkg/ics"
)

// ListEvents fetches the feed at opt.CalendarID and applies the query options locally.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]timesheet.CalendarEvent, error) {
	if opt.CalendarID == "" {
		return nil, repository.ErrMissingCalendar
	}
	if opt.OrderBy != "" && opt.OrderBy != repository.OrderByStartTime {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnsupportedOrder, opt.OrderBy)
	}

	body, err := r.fetcher.Fetch(ctx, opt.CalendarID)
	if err != nil {
		r.l.Errorf(ctx, "ics.ListEvents fetch: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	parsed, err := pkgIcs.Parse(body)
	if err != nil {
		r.l.Errorf(ctx, "ics.ListEvents parse: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	var occurrences []pkgIcs.Occurrence
	if opt.SingleEvents {
		var skipped []string
		occurrences, skipped, err = pkgIcs.Expand(parsed, opt.TimeMin, opt.TimeMax)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
		}
		for _, uid := range skipped {
			r.l.Warnf(ctx, "ics.ListEvents: could not expand recurrence of %s", uid)
		}
	} else {
		occurrences = baseOccurrences(parsed, opt)
	}

	events := make([]timesheet.CalendarEvent, 0, len(occurrences))
	for _, occ := range occurrences {
		if !opt.ShowDeleted && occ.Status == pkgIcs.StatusCancelled {
			continue
		}
		events = append(events, toCalendarEvent(occ, opt.MaxAttendees))
	}

	if opt.OrderBy == repository.OrderByStartTime {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Start.Before(events[j].Start)
		})
	}
	return events, nil
}

// baseOccurrences keeps unexpanded masters that start inside the window.
func baseOccurrences(parsed []pkgIcs.Event, opt repository.ListEventsOptions) []pkgIcs.Occurrence {
	var out []pkgIcs.Occurrence
	for _, ev := range parsed {
		if ev.Recurrence != nil {
			continue
		}
		if ev.Start.Before(opt.TimeMin) || !ev.Start.Before(opt.TimeMax) {
			continue
		}
		out = append(out, pkgIcs.Occurrence{
			ID:        ev.UID,
			UID:       ev.UID,
			Summary:   ev.Summary,
			Status:    ev.Status,
			Start:     ev.Start,
			End:       ev.End,
			AllDay:    ev.AllDay,
			Attendees: ev.Attendees,
		})
	}
	return out
}

func toCalendarEvent(occ pkgIcs.Occurrence, maxAttendees int) timesheet.CalendarEvent {
	ev := timesheet.CalendarEvent{
		ID:    occ.ID,
		Title: occ.Summary,
		Start: occ.Start,
		End:   occ.End,
	}
	// All-day entries carry no timed start/end, same as the Google source.
	if occ.AllDay {
		ev.Start, ev.End = time.Time{}, time.Time{}
	}

	attendees := occ.Attendees
	if maxAttendees > 0 && len(attendees) > maxAttendees {
		attendees = attendees[:maxAttendees]
	}
	for _, a := range attendees {
		ev.Attendees = append(ev.Attendees, timesheet.Attendee{
			Email:          a.Email,
			ResponseStatus: a.PartStat,
		})
	}
	return ev
}
