package timesheet

import (
	"regexp"
	"strings"
)

// CategoryDelimiter separates a task's category from its title.
const CategoryDelimiter = ":"

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	keySeparators = regexp.MustCompile(`[\s_\p{P}\p{S}]+`)
)

// SplitCategory splits title at the first CategoryDelimiter. Neither part is
// trimmed: "Bug: fix login" yields ("Bug", " fix login", true). Without a
// delimiter the title comes back unchanged with ok=false.
func SplitCategory(title string) (category, rest string, ok bool) {
	before, after, found := strings.Cut(title, CategoryDelimiter)
	if !found {
		return "", title, false
	}
	return before, after, true
}

// Categorize applies SplitCategory to every event. Only task events go through here.
func Categorize(events []CalendarEvent) []CategorizedEvent {
	out := make([]CategorizedEvent, 0, len(events))
	for _, ev := range events {
		category, rest, ok := SplitCategory(ev.Title)
		ce := CategorizedEvent{CalendarEvent: ev}
		if ok {
			ce.Category = category
			ce.Title = rest
		}
		out = append(out, ce)
	}
	return out
}

// Uncategorized wraps events without touching their titles (meeting events).
func Uncategorized(events []CalendarEvent) []CategorizedEvent {
	out := make([]CategorizedEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, CategorizedEvent{CalendarEvent: ev})
	}
	return out
}

// ResolveKey returns the merge key of an event: the normalized category when
// one is present, the event id otherwise.
func ResolveKey(ev CalendarEvent, category string) string {
	if category == "" {
		return ev.ID
	}
	return NormalizeKey(category)
}

// NormalizeKey kebab-cases s: "ProjX" -> "proj-x", "Bug Fix" -> "bug-fix",
// "ABC-123" -> "abc-123". Edge hyphens are trimmed, so "Proj." and " Proj"
// both give "proj"; a category made only of separators keeps them.
func NormalizeKey(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1-$2")
	s = keySeparators.ReplaceAllStringFunc(s, func(m string) string {
		if m == "-" {
			return m
		}
		return "-"
	})
	s = strings.ToLower(s)
	if trimmed := strings.Trim(s, "-"); trimmed != "" {
		return trimmed
	}
	return s
}
