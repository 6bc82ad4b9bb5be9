package http

import (
	"context"
	"strings"
	"sync"
	"time"

	"daily-timesheet/internal/timesheet"
)

// Board is the renderer behind the HTTP view. It keeps whatever the
// controller drew last.
type Board struct {
	ticketURL string

	mu   sync.RWMutex
	view View
}

var _ timesheet.Renderer = (*Board)(nil)

// View is the full display state.
type View struct {
	Visible  bool
	Date     time.Time
	Meetings *Table
	Tasks    *Table
	Error    string
}

// Table is one rendered AggregationResult.
type Table struct {
	Rows            []Row
	GrandTotalHours float64
	GrandTotal      string
	Skipped         int
}

// Row is one display row with preformatted strings.
type Row struct {
	Key        string
	Label      string
	Tag        *Tag
	TotalHours float64
	Total      string
	IsMultiple bool
}

// Tag is a category badge; Href is empty unless the category is linkable.
type Tag struct {
	Name string
	Href string
}

// NewBoard creates a hidden board. ticketURL is the base for category links.
func NewBoard(ticketURL string) *Board {
	return &Board{ticketURL: strings.TrimRight(ticketURL, "/")}
}

func (b *Board) RenderRows(ctx context.Context, date time.Time, target timesheet.Target, result timesheet.AggregationResult) {
	table := b.newTable(result)

	b.mu.Lock()
	defer b.mu.Unlock()

	// A new date replaces everything drawn for the previous one.
	if !b.view.Date.Equal(date) || b.view.Error != "" {
		b.view = View{Date: date}
	}
	b.view.Visible = true

	switch target {
	case timesheet.TargetMeetings:
		b.view.Meetings = table
	case timesheet.TargetTasks:
		b.view.Tasks = table
	}
}

func (b *Board) RenderError(ctx context.Context, date time.Time, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.view = View{
		Visible: true,
		Date:    date,
		Error:   err.Error(),
	}
}

func (b *Board) ClearAll(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.view = View{}
}

// Snapshot returns the current view. Tables are never mutated after
// rendering, so sharing them is safe.
func (b *Board) Snapshot() View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.view
}

func (b *Board) newTable(result timesheet.AggregationResult) *Table {
	rows := make([]Row, 0, len(result.Rows))
	for _, r := range result.Rows {
		row := Row{
			Key:        r.Key,
			Label:      r.Label,
			TotalHours: r.TotalDurationHours,
			Total:      timesheet.FormatHours(r.TotalDurationHours),
			IsMultiple: r.IsMultiple,
		}
		if r.CategoryTag != nil {
			row.Tag = &Tag{Name: r.CategoryTag.Name}
			if r.CategoryTag.Linkable && b.ticketURL != "" {
				row.Tag.Href = b.ticketURL + "/" + strings.TrimSpace(r.CategoryTag.Name)
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Rows:            rows,
		GrandTotalHours: result.GrandTotalHours,
		GrandTotal:      timesheet.FormatHours(result.GrandTotalHours),
		Skipped:         len(result.Skipped),
	}
}
