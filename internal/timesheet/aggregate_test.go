package timesheet_test

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"daily-timesheet/internal/timesheet"
)

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

// at builds an event starting at hour h lasting d hours.
func at(id, title string, h, d float64) timesheet.CalendarEvent {
	start := day.Add(time.Duration(h * float64(time.Hour)))
	return timesheet.CalendarEvent{
		ID:    id,
		Title: title,
		Start: start,
		End:   start.Add(time.Duration(d * float64(time.Hour))),
	}
}

func TestAggregateTasks(t *testing.T) {
	agg := timesheet.NewAggregator("")

	t.Run("Same category merges", func(t *testing.T) {
		events := timesheet.Categorize([]timesheet.CalendarEvent{
			at("1", "Proj: task A", 9, 1),
			at("2", "Proj: task B", 10, 2),
		})

		res := agg.Aggregate(events)
		if len(res.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(res.Rows))
		}

		row := res.Rows[0]
		if row.Key != "proj" || row.TotalDurationHours != 3 || !row.IsMultiple {
			t.Errorf("unexpected row: %+v", row)
		}
		if row.Label != " task A (1) /  task B (2)" {
			t.Errorf("unexpected label: %q", row.Label)
		}
		if row.CategoryTag == nil || row.CategoryTag.Name != "Proj" {
			t.Errorf("expected category tag, got %+v", row.CategoryTag)
		}
		if res.GrandTotalHours != 3 {
			t.Errorf("expected grand total 3, got %v", res.GrandTotalHours)
		}
	})

	t.Run("Three way merge annotates only once", func(t *testing.T) {
		events := timesheet.Categorize([]timesheet.CalendarEvent{
			at("1", "X:a", 9, 0.5),
			at("2", "X:b", 10, 1.5),
			at("3", "X:c", 12, 0.25),
		})

		row := agg.Aggregate(events).Rows[0]
		if row.Label != "a (0.5) / b (1.5) / c (0.25)" {
			t.Errorf("unexpected label: %q", row.Label)
		}
		if row.TotalDurationHours != 2.25 {
			t.Errorf("unexpected total: %v", row.TotalDurationHours)
		}
	})

	t.Run("Categories normalize before keying", func(t *testing.T) {
		events := timesheet.Categorize([]timesheet.CalendarEvent{
			at("1", "Bug Fix: a", 9, 1),
			at("2", "bug_fix: b", 10, 1),
		})

		res := agg.Aggregate(events)
		if len(res.Rows) != 1 || res.Rows[0].Key != "bug-fix" {
			t.Errorf("expected one bug-fix row, got %+v", res.Rows)
		}
		if res.Rows[0].CategoryTag.Name != "Bug Fix" {
			t.Errorf("tag keeps the first category spelling, got %q", res.Rows[0].CategoryTag.Name)
		}
	})

	t.Run("Single event is not multiple", func(t *testing.T) {
		res := agg.Aggregate(timesheet.Categorize([]timesheet.CalendarEvent{at("1", "Proj: solo", 9, 1)}))
		if res.Rows[0].IsMultiple || res.Rows[0].Label != " solo" {
			t.Errorf("unexpected row: %+v", res.Rows[0])
		}
	})
}

func TestAggregateMeetings(t *testing.T) {
	agg := timesheet.NewAggregator("")

	events := timesheet.Uncategorized([]timesheet.CalendarEvent{
		at("m1", "Standup", 9, 0.25),
		at("m2", "Standup", 10, 0.25),
		at("m3", "Proj: planning", 11, 1),
	})

	res := agg.Aggregate(events)
	if len(res.Rows) != 3 {
		t.Fatalf("meetings never merge by title, got %d rows", len(res.Rows))
	}
	for i, id := range []string{"m1", "m2", "m3"} {
		if res.Rows[i].Key != id || res.Rows[i].CategoryTag != nil {
			t.Errorf("row %d: unexpected %+v", i, res.Rows[i])
		}
	}
	if res.Rows[2].Label != "Proj: planning" {
		t.Errorf("meeting titles are not split, got %q", res.Rows[2].Label)
	}

	t.Run("Repeated id merges", func(t *testing.T) {
		res := agg.Aggregate(timesheet.Uncategorized([]timesheet.CalendarEvent{
			at("same", "Sync", 9, 1),
			at("same", "Sync", 10, 1),
		}))
		if len(res.Rows) != 1 || !res.Rows[0].IsMultiple {
			t.Errorf("expected a merged row, got %+v", res.Rows)
		}
	})
}

func TestAggregateOrderAndTotals(t *testing.T) {
	agg := timesheet.NewAggregator("")

	events := timesheet.Categorize([]timesheet.CalendarEvent{
		at("1", "B: one", 8, 1),
		at("2", "A: two", 9, 0.5),
		at("3", "Meeting notes", 10, 0.75),
		at("4", "B: three", 11, 2),
		at("5", "A: four", 13, 1.25),
		at("6", "C: five", 15, 0),
	})

	res := agg.Aggregate(events)

	wantKeys := []string{"b", "a", "3", "c"}
	if len(res.Rows) != len(wantKeys) {
		t.Fatalf("expected %d rows, got %d", len(wantKeys), len(res.Rows))
	}
	for i, k := range wantKeys {
		if res.Rows[i].Key != k {
			t.Errorf("row %d: key %q, want %q", i, res.Rows[i].Key, k)
		}
	}

	var sum, rowSum float64
	for _, ev := range events {
		sum += ev.End.Sub(ev.Start).Hours()
	}
	for _, r := range res.Rows {
		rowSum += r.TotalDurationHours
	}
	if math.Abs(res.GrandTotalHours-sum) > 1e-9 || math.Abs(rowSum-sum) > 1e-9 {
		t.Errorf("totals diverge: grand=%v rows=%v events=%v", res.GrandTotalHours, rowSum, sum)
	}

	if res.Rows[0].TotalDurationHours != 3 || res.Rows[1].TotalDurationHours != 1.75 {
		t.Errorf("unexpected row totals: %+v", res.Rows[:2])
	}
	if res.Rows[3].TotalDurationHours != 0 || res.Rows[3].IsMultiple {
		t.Errorf("zero-duration event is a normal row, got %+v", res.Rows[3])
	}
}

func TestAggregateMalformed(t *testing.T) {
	agg := timesheet.NewAggregator("")

	missingStart := at("bad-1", "Proj: x", 9, 1)
	missingStart.Start = time.Time{}
	missingEnd := at("bad-2", "Proj: y", 9, 1)
	missingEnd.End = time.Time{}

	res := agg.Aggregate(timesheet.Categorize([]timesheet.CalendarEvent{
		missingStart,
		at("ok", "Proj: z", 10, 2),
		missingEnd,
	}))

	if len(res.Rows) != 1 || res.Rows[0].TotalDurationHours != 2 || res.Rows[0].IsMultiple {
		t.Errorf("malformed events must not touch rows: %+v", res.Rows)
	}
	if res.GrandTotalHours != 2 || math.IsNaN(res.GrandTotalHours) {
		t.Errorf("unexpected grand total: %v", res.GrandTotalHours)
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("expected 2 skipped events, got %+v", res.Skipped)
	}
	if res.Skipped[0].ID != "bad-1" || res.Skipped[0].Reason != timesheet.ReasonMissingStart {
		t.Errorf("unexpected skip: %+v", res.Skipped[0])
	}
	if res.Skipped[1].ID != "bad-2" || res.Skipped[1].Reason != timesheet.ReasonMissingEnd {
		t.Errorf("unexpected skip: %+v", res.Skipped[1])
	}
}

func TestAggregateLinkableTags(t *testing.T) {
	agg := timesheet.NewAggregator("JIRA-")

	res := agg.Aggregate(timesheet.Categorize([]timesheet.CalendarEvent{
		at("1", "JIRA-101: fix", 9, 1),
		at("2", "Admin: mail", 10, 1),
	}))

	if !res.Rows[0].CategoryTag.Linkable {
		t.Errorf("expected JIRA-101 to be linkable")
	}
	if res.Rows[1].CategoryTag.Linkable {
		t.Errorf("expected Admin not to be linkable")
	}

	empty := timesheet.NewAggregator("").Aggregate(timesheet.Categorize([]timesheet.CalendarEvent{at("1", "JIRA-101: fix", 9, 1)}))
	if empty.Rows[0].CategoryTag.Linkable {
		t.Errorf("empty prefix must never link")
	}
}

func TestAggregateManyKeys(t *testing.T) {
	agg := timesheet.NewAggregator("")

	var events []timesheet.CalendarEvent
	for i := 0; i < 50; i++ {
		events = append(events, at(fmt.Sprint(i), fmt.Sprintf("K%d: item", i%7), float64(i%10), 0.5))
	}

	res := agg.Aggregate(timesheet.Categorize(events))
	if len(res.Rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(res.Rows))
	}
	for i, row := range res.Rows {
		if want := fmt.Sprintf("k%d", i); row.Key != want {
			t.Errorf("row %d: key %q, want %q", i, row.Key, want)
		}
		if !row.IsMultiple || strings.Count(row.Label, " / ") < 6 {
			t.Errorf("row %d: expected itemized label, got %q", i, row.Label)
		}
	}
	if res.GrandTotalHours != 25 {
		t.Errorf("expected 25 hours, got %v", res.GrandTotalHours)
	}
}
