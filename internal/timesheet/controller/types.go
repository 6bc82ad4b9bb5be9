package controller

import "time"

// State is a snapshot of the controller.
type State struct {
	Active       bool
	Date         time.Time
	FollowsToday bool // the date was picked as "today" and moves with rollover
	Generation   uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}
