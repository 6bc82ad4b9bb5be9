package datemath

import (
	"errors"
	"time"
)

// Window is a half-open [Start, End) time range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Absolute date layouts accepted by ParseDate, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
}

var ErrInvalidDate = errors.New("invalid date")
