package ics

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// Expand turns parsed events into single occurrences overlapping [start, end),
// sorted by start time. Cancelled instances are kept; callers filter them.
// Events with unparsable RRULEs are returned in skipped by UID.
func Expand(events []Event, start, end time.Time) (occ []Occurrence, skipped []string, err error) {
	if end.Before(start) {
		return nil, nil, ErrInvalidSpan
	}

	overrides := make(map[string][]Event)
	var bases []Event
	for _, ev := range events {
		if ev.Recurrence != nil {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
			continue
		}
		bases = append(bases, ev)
	}

	for _, ev := range bases {
		if ev.RawRRule == "" {
			if inWindow(ev, start, end) {
				occ = append(occ, toOccurrence(ev, ev.UID))
			}
			continue
		}

		instances, ok := expandRecurring(ev, overrides[ev.UID], start, end)
		if !ok {
			skipped = append(skipped, ev.UID)
			continue
		}
		occ = append(occ, instances...)
	}

	sort.SliceStable(occ, func(i, j int) bool {
		return occ[i].Start.Before(occ[j].Start)
	})
	return occ, skipped, nil
}

func expandRecurring(ev Event, overrides []Event, start, end time.Time) ([]Occurrence, bool) {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil || ev.Start.IsZero() {
		return nil, false
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	dur := ev.End.Sub(ev.Start)
	if ev.End.IsZero() {
		dur = 0
	}
	loc := ev.Start.Location()
	starts := set.Between(start.Add(-dur).In(loc), end.In(loc), true)
	if len(starts) > defaultMaxOccurrencesPerEvent {
		starts = starts[:defaultMaxOccurrencesPerEvent]
	}

	var out []Occurrence
	for _, s := range starts {
		if hasOverride(overrides, s) {
			continue
		}
		if !overlaps(s, s.Add(dur), start, end) {
			continue
		}
		inst := ev
		inst.Start = s
		inst.End = s.Add(dur)
		out = append(out, toOccurrence(inst, instanceID(ev.UID, s)))
	}

	// Overrides are judged by their own timing: a moved instance shows up on
	// the day it moved to and disappears from the day it left.
	for _, o := range overrides {
		if o.Start.IsZero() || isExcluded(ev.ExDates, *o.Recurrence) || !inWindow(o, start, end) {
			continue
		}
		out = append(out, toOccurrence(o, instanceID(ev.UID, *o.Recurrence)))
	}
	return out, true
}

func hasOverride(overrides []Event, s time.Time) bool {
	for _, o := range overrides {
		if o.Recurrence.Equal(s) {
			return true
		}
	}
	return false
}

func isExcluded(exDates []time.Time, t time.Time) bool {
	for _, ex := range exDates {
		if ex.Equal(t) {
			return true
		}
	}
	return false
}

func instanceID(uid string, recurrence time.Time) string {
	return uid + "_" + recurrence.UTC().Format("20060102T150405Z")
}

// inWindow keeps events with broken timing so they surface downstream as malformed.
func inWindow(ev Event, start, end time.Time) bool {
	switch {
	case ev.Start.IsZero():
		return true
	case ev.End.IsZero():
		return !ev.Start.Before(start) && ev.Start.Before(end)
	default:
		return overlaps(ev.Start, ev.End, start, end)
	}
}

func toOccurrence(ev Event, id string) Occurrence {
	return Occurrence{
		ID:        id,
		UID:       ev.UID,
		Summary:   ev.Summary,
		Status:    ev.Status,
		Start:     ev.Start,
		End:       ev.End,
		AllDay:    ev.AllDay,
		Attendees: ev.Attendees,
	}
}

// overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
// Zero-length events at the window start count as inside.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Equal(aStart) {
		return !aStart.Before(bStart) && aStart.Before(bEnd)
	}
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
