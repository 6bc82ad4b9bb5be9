package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"daily-timesheet/internal/timesheet"
	"daily-timesheet/pkg/datemath"
	pkgLog "daily-timesheet/pkg/log"

	"github.com/google/uuid"
)

// Controller drives the idle/loaded lifecycle of the timesheet.
//
// Every cycle started by Activate, DateChanged or Rollover takes a new
// generation, and Deactivate bumps it as well. A cycle renders only if its
// generation is still current when it completes; anything older is dropped
// with ErrStaleCycle, and its context is cancelled as soon as it is superseded.
type Controller struct {
	l        pkgLog.Logger
	uc       timesheet.UseCase
	renderer timesheet.Renderer
	dateMath *datemath.Parser
	now      func() time.Time

	mu           sync.Mutex
	active       bool
	date         time.Time
	followsToday bool
	generation   uint64
	cancel       context.CancelFunc
}

// New creates an idle Controller.
func New(l pkgLog.Logger, uc timesheet.UseCase, renderer timesheet.Renderer, dateMath *datemath.Parser, opts ...Option) *Controller {
	c := &Controller{
		l:        l,
		uc:       uc,
		renderer: renderer,
		dateMath: dateMath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate moves idle -> loaded with today's date and runs a load cycle.
// Activating an already loaded controller is a no-op.
func (c *Controller) Activate(ctx context.Context) error {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return nil
	}
	c.active = true
	today := c.today()
	cycleCtx, gen := c.beginLocked(ctx, today, true)
	c.mu.Unlock()

	c.l.Infof(ctx, "timesheet.controller.Activate: %s", today.Format(time.DateOnly))
	return c.run(cycleCtx, gen, today)
}

// DateChanged reloads the timesheet for date, replacing all rows.
func (c *Controller) DateChanged(ctx context.Context, date time.Time) error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return timesheet.ErrNotActive
	}
	day := c.dateMath.StartOfDay(date)
	cycleCtx, gen := c.beginLocked(ctx, day, day.Equal(c.today()))
	c.mu.Unlock()

	return c.run(cycleCtx, gen, day)
}

// Rollover follows a day boundary: when the loaded date was "today" and
// today has moved on, the timesheet reloads for the new day.
func (c *Controller) Rollover(ctx context.Context) error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return timesheet.ErrNotActive
	}
	today := c.today()
	if !c.followsToday || c.date.Equal(today) {
		c.mu.Unlock()
		return nil
	}
	cycleCtx, gen := c.beginLocked(ctx, today, true)
	c.mu.Unlock()

	c.l.Infof(ctx, "timesheet.controller.Rollover: %s", today.Format(time.DateOnly))
	return c.run(cycleCtx, gen, today)
}

// Deactivate moves loaded -> idle, cancels any cycle in flight and clears the display.
func (c *Controller) Deactivate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	wasActive := c.active
	c.active = false
	c.date = time.Time{}
	c.followsToday = false
	c.renderer.ClearAll(ctx)

	if wasActive {
		c.l.Infof(ctx, "timesheet.controller.Deactivate: generation %d", c.generation)
	}
}

// OnAuthChange adapts the controller to a session listener.
func (c *Controller) OnAuthChange(ctx context.Context, authenticated bool) {
	if !authenticated {
		c.Deactivate(ctx)
		return
	}
	if err := c.Activate(ctx); err != nil && !errors.Is(err, timesheet.ErrStaleCycle) {
		c.l.Errorf(ctx, "timesheet.controller.OnAuthChange: %v", err)
	}
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Active:       c.active,
		Date:         c.date,
		FollowsToday: c.followsToday,
		Generation:   c.generation,
	}
}

// beginLocked starts a new generation for day. c.mu must be held.
func (c *Controller) beginLocked(ctx context.Context, day time.Time, followsToday bool) (context.Context, uint64) {
	if c.cancel != nil {
		c.cancel()
	}
	c.generation++
	c.date = day
	c.followsToday = followsToday

	cycleCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	return pkgLog.WithCycleID(cycleCtx, uuid.NewString()), c.generation
}

// run executes one load cycle and renders it if gen is still current.
func (c *Controller) run(ctx context.Context, gen uint64, day time.Time) error {
	out, err := c.uc.Load(ctx, timesheet.LoadInput{Date: day})

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.l.Warnf(ctx, "timesheet.controller: dropping result of generation %d (current %d)", gen, c.generation)
		return timesheet.ErrStaleCycle
	}
	// The cycle is finished; release its context.
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.renderer.RenderError(ctx, day, err)
		return err
	}

	c.renderer.RenderRows(ctx, out.Date, timesheet.TargetMeetings, out.Meetings)
	c.renderer.RenderRows(ctx, out.Date, timesheet.TargetTasks, out.Tasks)
	return nil
}

func (c *Controller) today() time.Time {
	return c.dateMath.StartOfDay(c.now())
}
