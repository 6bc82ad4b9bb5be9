package gcal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"daily-timesheet/internal/timesheet/repository"
	"daily-timesheet/internal/timesheet/repository/gcal"
	"daily-timesheet/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

type staticSource struct {
	client *gcalendar.Client
	err    error
}

func (s staticSource) Client(ctx context.Context) (*gcalendar.Client, error) {
	return s.client, s.err
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/meetings/events":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "m1",
						"summary": "Design review",
						"start": { "dateTime": "2024-05-01T10:00:00Z" },
						"end": { "dateTime": "2024-05-01T11:30:00Z" },
						"attendees": [ { "email": "me@example.com", "responseStatus": "accepted" } ]
					},
					{
						"id": "m2",
						"summary": "Offsite",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" }
					},
					{
						"id": "m3",
						"status": "cancelled",
						"summary": "Dropped sync",
						"start": { "dateTime": "2024-05-01T14:00:00Z" },
						"end": { "dateTime": "2024-05-01T15:00:00Z" }
					}
				]
			}`))
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(ctx, tsClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Maps events", func(t *testing.T) {
		repo := gcal.New(staticSource{client: client}, &mockLogger{})

		events, err := repo.ListEvents(ctx, repository.DayQuery("meetings", start, start.AddDate(0, 0, 1)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}

		review := events[0]
		if review.ID != "m1" || review.Title != "Design review" || review.End.Sub(review.Start) != 90*time.Minute {
			t.Errorf("unexpected event: %+v", review)
		}
		if len(review.Attendees) != 1 || review.Attendees[0].ResponseStatus != "accepted" {
			t.Errorf("unexpected attendees: %+v", review.Attendees)
		}
		if !events[1].Start.IsZero() {
			t.Errorf("all-day event must carry no start, got %v", events[1].Start)
		}
	})

	t.Run("Keeps cancelled items when deleted events are requested", func(t *testing.T) {
		repo := gcal.New(staticSource{client: client}, &mockLogger{})

		opt := repository.DayQuery("meetings", start, start.AddDate(0, 0, 1))
		opt.ShowDeleted = true
		events, err := repo.ListEvents(ctx, opt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 3 || events[2].ID != "m3" {
			t.Errorf("expected cancelled item to be kept, got %+v", events)
		}
	})

	t.Run("API error", func(t *testing.T) {
		repo := gcal.New(staticSource{client: client}, &mockLogger{})
		_, err := repo.ListEvents(ctx, repository.DayQuery("forbidden", start, start.AddDate(0, 0, 1)))
		if !errors.Is(err, repository.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})

	t.Run("Session error", func(t *testing.T) {
		sessionErr := errors.New("signed out")
		repo := gcal.New(staticSource{err: sessionErr}, &mockLogger{})
		_, err := repo.ListEvents(ctx, repository.DayQuery("meetings", start, start.AddDate(0, 0, 1)))
		if !errors.Is(err, sessionErr) {
			t.Errorf("expected session error, got %v", err)
		}
	})

	t.Run("Missing calendar", func(t *testing.T) {
		repo := gcal.New(staticSource{client: client}, &mockLogger{})
		_, err := repo.ListEvents(ctx, repository.ListEventsOptions{})
		if !errors.Is(err, repository.ErrMissingCalendar) {
			t.Errorf("expected ErrMissingCalendar, got %v", err)
		}
	})
}
