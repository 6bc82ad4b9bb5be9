package gcal

import (
	"context"

	"daily-timesheet/internal/timesheet/repository"
	"daily-timesheet/pkg/gcalendar"
	pkgLog "daily-timesheet/pkg/log"
)

// ClientSource hands out the calendar client of the current session.
type ClientSource interface {
	Client(ctx context.Context) (*gcalendar.Client, error)
}

type implRepository struct {
	clients ClientSource
	l       pkgLog.Logger
}

var _ repository.EventRepository = (*implRepository)(nil)

// New creates a Google Calendar backed EventRepository.
func New(clients ClientSource, l pkgLog.Logger) repository.EventRepository {
	return &implRepository{
		clients: clients,
		l:       l,
	}
}
