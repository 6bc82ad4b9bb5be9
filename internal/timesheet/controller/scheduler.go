package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daily-timesheet/internal/timesheet"
	pkgLog "daily-timesheet/pkg/log"

	"github.com/robfig/cron/v3"
)

// DefaultRolloverSpec fires at local midnight.
const DefaultRolloverSpec = "0 0 * * *"

// Roller is the part of the controller the scheduler drives.
type Roller interface {
	Rollover(ctx context.Context) error
}

// Scheduler runs the day rollover job on a cron schedule.
type Scheduler struct {
	l    pkgLog.Logger
	cron *cron.Cron
}

// NewScheduler registers roller.Rollover under spec, evaluated in loc.
func NewScheduler(l pkgLog.Logger, roller Roller, spec string, loc *time.Location) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultRolloverSpec
	}

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		ctx := context.Background()
		if err := roller.Rollover(ctx); err != nil && !errors.Is(err, timesheet.ErrNotActive) {
			l.Errorf(ctx, "timesheet.scheduler: rollover: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid rollover schedule %q: %w", spec, err)
	}

	return &Scheduler{l: l, cron: c}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.l.Warnf(ctx, "timesheet.scheduler: stop: %v", ctx.Err())
	}
}
