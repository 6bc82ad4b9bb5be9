package http

import (
	"strings"
	"time"

	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/controller"
	"daily-timesheet/pkg/response"
)

// --- Request DTOs ---

type changeDateReq struct {
	Date string `json:"date" binding:"required"`
}

func (r changeDateReq) validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return timesheet.ErrInvalidDate
	}
	return nil
}

// --- Response DTOs ---

type tagResp struct {
	Name string `json:"name"`
	Href string `json:"href,omitempty"`
}

type rowResp struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Category   *tagResp `json:"category,omitempty"`
	TotalHours float64  `json:"total_hours"`
	Total      string   `json:"total"`
	IsMultiple bool     `json:"is_multiple"`
}

type tableResp struct {
	Rows            []rowResp `json:"rows"`
	GrandTotalHours float64   `json:"grand_total_hours"`
	GrandTotal      string    `json:"grand_total"`
	Skipped         int       `json:"skipped"`
}

type viewResp struct {
	Active     bool           `json:"active"`
	Visible    bool           `json:"visible"`
	Date       *response.Date `json:"date,omitempty"`
	Generation uint64         `json:"generation"`
	Meetings   *tableResp     `json:"meetings,omitempty"`
	Tasks      *tableResp     `json:"tasks,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func newTableResp(t *Table) *tableResp {
	if t == nil {
		return nil
	}
	rows := make([]rowResp, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = rowResp{
			Key:        r.Key,
			Label:      r.Label,
			TotalHours: r.TotalHours,
			Total:      r.Total,
			IsMultiple: r.IsMultiple,
		}
		if r.Tag != nil {
			rows[i].Category = &tagResp{Name: r.Tag.Name, Href: r.Tag.Href}
		}
	}
	return &tableResp{
		Rows:            rows,
		GrandTotalHours: t.GrandTotalHours,
		GrandTotal:      t.GrandTotal,
		Skipped:         t.Skipped,
	}
}

func (h *handler) newViewResp(view View, state controller.State) viewResp {
	resp := viewResp{
		Active:     state.Active,
		Visible:    view.Visible,
		Generation: state.Generation,
		Meetings:   newTableResp(view.Meetings),
		Tasks:      newTableResp(view.Tasks),
		Date:       response.NewDate(pickDate(view.Date, state.Date)),
		Error:      view.Error,
	}
	return resp
}

// pickDate prefers the rendered date; before the first render the
// controller's date is all there is.
func pickDate(rendered, current time.Time) time.Time {
	if !rendered.IsZero() {
		return rendered
	}
	return current
}

type authStatusResp struct {
	Authenticated bool `json:"authenticated"`
}
