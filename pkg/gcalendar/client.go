package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Scope is the only scope the timesheet needs.
const Scope = calendar.CalendarReadonlyScope

var ErrMissingToken = errors.New("google credentials are OAuth Desktop type but no token file found")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
// tokenPath is only read for installed-app credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
// Service account keys are tried first, then installed-app OAuth credentials
// with a previously saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, Scope)
	if err == nil {
		return NewClientFromTokenSource(ctx, config.TokenSource(ctx))
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, Scope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tok, tokErr := ReadToken(tokenPath)
	if tokErr != nil {
		return nil, tokErr
	}

	return NewClientFromTokenSource(ctx, oauthConfig.TokenSource(ctx, tok))
}

// NewClientFromTokenSource creates a Calendar client that authenticates with ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ReadToken loads an OAuth token saved by scripts/gcal-auth or the web sign-in.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingToken
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// WriteToken persists tok with owner-only permissions.
func WriteToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ListEvents returns every event in [TimeMin, TimeMax), following pagination.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendar
	}

	call := c.service.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(req.SingleEvents).
		ShowDeleted(req.ShowDeleted)
	if req.OrderBy != "" {
		call = call.OrderBy(req.OrderBy)
	}
	if req.MaxAttendees > 0 {
		call = call.MaxAttendees(req.MaxAttendees)
	}

	var out []Event
	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}
		for _, item := range resp.Items {
			out = append(out, toEvent(item))
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return out, nil
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:      item.Id,
		Summary: item.Summary,
		Status:  item.Status,
	}
	ev.StartTime, ev.AllDay = parseEventTime(item.Start)
	ev.EndTime, _ = parseEventTime(item.End)

	for _, a := range item.Attendees {
		if a == nil {
			continue
		}
		ev.Attendees = append(ev.Attendees, Attendee{
			Email:          a.Email,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return ev
}

// parseEventTime reads dateTime only. Date-only values report allDay with a zero time.
func parseEventTime(edt *calendar.EventDateTime) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime == "" {
		return time.Time{}, edt.Date != ""
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, false
}
