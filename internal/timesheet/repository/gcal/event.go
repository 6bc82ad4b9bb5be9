package gcal

import (
	"context"
	"fmt"

	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/repository"
	"daily-timesheet/pkg/gcalendar"
)

// ListEvents queries one calendar for the window in opt.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]timesheet.CalendarEvent, error) {
	if opt.CalendarID == "" {
		return nil, repository.ErrMissingCalendar
	}

	client, err := r.clients.Client(ctx)
	if err != nil {
		return nil, err
	}

	items, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:   opt.CalendarID,
		TimeMin:      opt.TimeMin,
		TimeMax:      opt.TimeMax,
		SingleEvents: opt.SingleEvents,
		ShowDeleted:  opt.ShowDeleted,
		OrderBy:      opt.OrderBy,
		MaxAttendees: int64(opt.MaxAttendees),
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal.ListEvents %s: %v", opt.CalendarID, err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	events := make([]timesheet.CalendarEvent, 0, len(items))
	for _, item := range items {
		// Deleted items only matter to callers that asked for them.
		if !opt.ShowDeleted && item.Status == gcalendar.StatusCancelled {
			continue
		}
		if item.AllDay {
			r.l.Debugf(ctx, "gcal.ListEvents: %s is an all-day event without times", item.ID)
		}
		events = append(events, toCalendarEvent(item))
	}
	return events, nil
}

func toCalendarEvent(item gcalendar.Event) timesheet.CalendarEvent {
	ev := timesheet.CalendarEvent{
		ID:    item.ID,
		Title: item.Summary,
		Start: item.StartTime,
		End:   item.EndTime,
	}
	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, timesheet.Attendee{
			Email:          a.Email,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return ev
}
