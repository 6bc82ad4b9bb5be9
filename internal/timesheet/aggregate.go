package timesheet

import "strings"

const labelSeparator = " / "

// Aggregator groups events into display rows.
type Aggregator struct {
	ticketPrefix string
}

// NewAggregator returns an Aggregator that marks category tags containing
// ticketPrefix as linkable. An empty prefix never links.
func NewAggregator(ticketPrefix string) *Aggregator {
	return &Aggregator{ticketPrefix: ticketPrefix}
}

// aggregation is the working state of one pass: rows plus a key->row index.
type aggregation struct {
	result AggregationResult
	index  map[string]int
}

// Aggregate folds events, in order, into rows keyed by ResolveKey.
//
// A key seen for the first time appends a row. A repeated key merges into the
// existing row: on the first merge the label gains the running total, "A (1)",
// then every merge appends " / B (2)" and adds to the row total.
// GrandTotalHours sums every aggregated event regardless of grouping.
// Events without a start or end are skipped and reported in Skipped.
func (a *Aggregator) Aggregate(events []CategorizedEvent) AggregationResult {
	agg := aggregation{
		result: AggregationResult{Rows: make([]AggregatedRow, 0, len(events))},
		index:  make(map[string]int, len(events)),
	}

	for _, ev := range events {
		if reason, ok := checkTiming(ev.CalendarEvent); !ok {
			agg.result.Skipped = append(agg.result.Skipped, SkippedEvent{ID: ev.ID, Reason: reason})
			continue
		}

		duration := ev.End.Sub(ev.Start).Hours()
		key := ResolveKey(ev.CalendarEvent, ev.Category)

		if i, found := agg.index[key]; found {
			mergeInto(&agg.result.Rows[i], ev.Title, duration)
		} else {
			agg.index[key] = len(agg.result.Rows)
			agg.result.Rows = append(agg.result.Rows, a.newRow(key, ev, duration))
		}

		agg.result.GrandTotalHours += duration
	}

	return agg.result
}

func (a *Aggregator) newRow(key string, ev CategorizedEvent, duration float64) AggregatedRow {
	row := AggregatedRow{
		Key:                key,
		Label:              ev.Title,
		TotalDurationHours: duration,
	}
	if ev.Category != "" {
		row.CategoryTag = &CategoryTag{
			Name:     ev.Category,
			Linkable: a.isLinkable(ev.Category),
		}
	}
	return row
}

func (a *Aggregator) isLinkable(category string) bool {
	return a.ticketPrefix != "" && strings.Contains(category, a.ticketPrefix)
}

func mergeInto(row *AggregatedRow, title string, duration float64) {
	if !row.IsMultiple {
		row.Label += " (" + formatNumber(row.TotalDurationHours) + ")"
	}
	row.Label += labelSeparator + title + " (" + formatNumber(duration) + ")"
	row.TotalDurationHours += duration
	row.IsMultiple = true
}

func checkTiming(ev CalendarEvent) (string, bool) {
	switch {
	case ev.Start.IsZero():
		return ReasonMissingStart, false
	case ev.End.IsZero():
		return ReasonMissingEnd, false
	}
	return "", true
}
