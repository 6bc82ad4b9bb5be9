package ics

import (
	"errors"
	"time"
)

// Event is a VEVENT as parsed from a feed, before recurrence expansion.
type Event struct {
	UID       string
	Summary   string
	Status    string // CONFIRMED, TENTATIVE, CANCELLED
	Start     time.Time
	End       time.Time
	AllDay    bool
	Attendees []Attendee

	RawRRule   string
	ExDates    []time.Time
	Recurrence *time.Time // RECURRENCE-ID of an overridden instance
}

// Attendee is an ATTENDEE line with its PARTSTAT.
type Attendee struct {
	Email    string
	PartStat string
}

// Occurrence is one concrete instance of an event inside a window.
type Occurrence struct {
	ID        string
	UID       string
	Summary   string
	Status    string
	Start     time.Time
	End       time.Time
	AllDay    bool
	Attendees []Attendee
}

const (
	StatusCancelled = "CANCELLED"

	defaultMaxOccurrencesPerEvent = 1000
)

var (
	ErrEmptyBody   = errors.New("empty ICS body")
	ErrBadStatus   = errors.New("unexpected ICS response status")
	ErrInvalidSpan = errors.New("window end is before start")
)
