package session

import "errors"

var (
	ErrNotAuthenticated = errors.New("not signed in")
	ErrStaticSession    = errors.New("session uses static credentials")
	ErrEmptyCode        = errors.New("authorization code is required")
)
