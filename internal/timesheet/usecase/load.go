package usecase

import (
	"context"
	"fmt"

	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/repository"
)

// Load runs one load cycle for input.Date: meetings are fetched and aggregated
// first, and the task calendar is only queried once that has succeeded.
func (uc *implUseCase) Load(ctx context.Context, input timesheet.LoadInput) (timesheet.LoadOutput, error) {
	day := uc.dateMath.StartOfDay(input.Date)
	window := uc.dateMath.DayWindow(day)

	uc.l.Debugf(ctx, "timesheet.usecase.Load: window [%s, %s)", window.Start.Format("2006-01-02T15:04:05Z07:00"), window.End.Format("2006-01-02T15:04:05Z07:00"))

	meetingEvents, err := uc.repo.ListEvents(ctx, repository.DayQuery(uc.cfg.MeetingCalendarID, window.Start, window.End))
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Load: meetings: %v", err)
		return timesheet.LoadOutput{}, fmt.Errorf("%w: %w", timesheet.ErrFetchMeetings, err)
	}

	meetings := uc.aggregator.Aggregate(timesheet.Uncategorized(timesheet.FilterAccepted(meetingEvents)))
	uc.logSkipped(ctx, timesheet.TargetMeetings, meetings.Skipped)

	// A superseded cycle stops here rather than spend a second request.
	if err := ctx.Err(); err != nil {
		return timesheet.LoadOutput{}, err
	}

	taskEvents, err := uc.repo.ListEvents(ctx, repository.DayQuery(uc.cfg.TaskCalendarID, window.Start, window.End))
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Load: tasks: %v", err)
		return timesheet.LoadOutput{}, fmt.Errorf("%w: %w", timesheet.ErrFetchTasks, err)
	}

	tasks := uc.aggregator.Aggregate(timesheet.Categorize(taskEvents))
	uc.logSkipped(ctx, timesheet.TargetTasks, tasks.Skipped)

	uc.l.Infof(ctx, "timesheet.usecase.Load: %s meetings=%d rows (%d events) tasks=%d rows (%d events)",
		day.Format("2006-01-02"), len(meetings.Rows), len(meetingEvents), len(tasks.Rows), len(taskEvents))

	return timesheet.LoadOutput{
		Date:     day,
		Meetings: meetings,
		Tasks:    tasks,
	}, nil
}

func (uc *implUseCase) logSkipped(ctx context.Context, target timesheet.Target, skipped []timesheet.SkippedEvent) {
	for _, s := range skipped {
		uc.l.Warnf(ctx, "timesheet.usecase.Load: %s event %q skipped: %s", target, s.ID, s.Reason)
	}
}
