package ics

import (
	"context"

	"daily-timesheet/internal/timesheet/repository"
	pkgIcs "daily-timesheet/pkg/ics"
	pkgLog "daily-timesheet/pkg/log"
)

// Fetcher downloads a feed body by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type implRepository struct {
	fetcher Fetcher
	l       pkgLog.Logger
}

var (
	_ repository.EventRepository = (*implRepository)(nil)
	_ Fetcher                    = (*pkgIcs.Fetcher)(nil)
)

// New creates an EventRepository over ICS feeds. Calendar ids are feed URLs.
func New(fetcher Fetcher, l pkgLog.Logger) repository.EventRepository {
	return &implRepository{
		fetcher: fetcher,
		l:       l,
	}
}
