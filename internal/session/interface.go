package session

import (
	"context"

	"daily-timesheet/pkg/gcalendar"
)

// Listener is told about every sign-in state transition.
type Listener func(ctx context.Context, authenticated bool)

// Provider owns authentication. The timesheet only reacts to its transitions.
type Provider interface {
	IsAuthenticated() bool
	OnAuthChange(fn Listener)
	// Restore loads any persisted session and announces the initial state to listeners.
	Restore(ctx context.Context) error
	SignIn(ctx context.Context, code string) error
	SignOut(ctx context.Context) error
	Client(ctx context.Context) (*gcalendar.Client, error)
}
