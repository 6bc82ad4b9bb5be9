package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"daily-timesheet/internal/middleware"
	"daily-timesheet/internal/session"
	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/controller"
	timesheetHTTP "daily-timesheet/internal/timesheet/delivery/http"
	"daily-timesheet/pkg/datemath"
	"daily-timesheet/pkg/gcalendar"

	"github.com/gin-gonic/gin"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock controller that renders straight into the board
type mockController struct {
	board *timesheetHTTP.Board
	state controller.State
	err   error
	got   []time.Time
}

func (m *mockController) DateChanged(ctx context.Context, date time.Time) error {
	m.got = append(m.got, date)
	if m.err != nil {
		return m.err
	}
	m.state.Date = date
	m.state.Generation++
	m.board.RenderRows(ctx, date, timesheet.TargetMeetings, timesheet.AggregationResult{
		Rows:            []timesheet.AggregatedRow{{Key: "m1", Label: "Standup", TotalDurationHours: 0.5}},
		GrandTotalHours: 0.5,
	})
	m.board.RenderRows(ctx, date, timesheet.TargetTasks, timesheet.AggregationResult{})
	return nil
}

func (m *mockController) State() controller.State { return m.state }

// Mock OAuth session
type mockSession struct {
	authenticated bool
	signInErr     error
	codes         []string
}

func (m *mockSession) IsAuthenticated() bool             { return m.authenticated }
func (m *mockSession) OnAuthChange(fn session.Listener)  {}
func (m *mockSession) Restore(ctx context.Context) error { return nil }
func (m *mockSession) AuthCodeURL(state string) string   { return "https://consent.example.com/?state=" + state }

func (m *mockSession) Client(ctx context.Context) (*gcalendar.Client, error) {
	return nil, session.ErrNotAuthenticated
}

func (m *mockSession) SignOut(ctx context.Context) error {
	m.authenticated = false
	return nil
}

func (m *mockSession) SignIn(ctx context.Context, code string) error {
	m.codes = append(m.codes, code)
	if m.signInErr != nil {
		return m.signInErr
	}
	m.authenticated = true
	return nil
}

type fixture struct {
	router *gin.Engine
	ctrl   *mockController
	sess   *mockSession
}

func newFixture(t *testing.T, sess session.Provider) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dateMath, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	board := timesheetHTTP.NewBoard("")
	ctrl := &mockController{board: board, state: controller.State{Active: true}}
	h := timesheetHTTP.New(&mockLogger{}, ctrl, board, sess, dateMath)
	mw := middleware.New(&mockLogger{}, 0)

	r := gin.New()
	timesheetHTTP.RegisterRoutes(r.Group("/api/v1/timesheet"), h, mw)
	timesheetHTTP.RegisterAuthRoutes(r.Group("/auth"), h, mw)

	f := fixture{router: r, ctrl: ctrl}
	if ms, ok := sess.(*mockSession); ok {
		f.sess = ms
	}
	return f
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func (f fixture) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func TestChangeDate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ctrlErr    error
		wantStatus int
		wantDate   string
	}{
		{name: "Absolute date", body: `{"date":"2024-05-01"}`, wantStatus: http.StatusOK, wantDate: "2024-05-01"},
		{name: "Missing date", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "Invalid date", body: `{"date":"someday"}`, wantStatus: http.StatusBadRequest},
		{name: "Not active", body: `{"date":"2024-05-01"}`, ctrlErr: timesheet.ErrNotActive, wantStatus: http.StatusConflict},
		{name: "Fetch failure", body: `{"date":"2024-05-01"}`, ctrlErr: fmt.Errorf("%w: boom", timesheet.ErrFetchMeetings), wantStatus: http.StatusBadGateway},
		{name: "Signed out", body: `{"date":"2024-05-01"}`, ctrlErr: fmt.Errorf("%w: %w", timesheet.ErrFetchMeetings, session.ErrNotAuthenticated), wantStatus: http.StatusUnauthorized},
		{name: "Unknown error", body: `{"date":"2024-05-01"}`, ctrlErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &mockSession{authenticated: true})
			f.ctrl.err = tt.ctrlErr

			w, env := f.do(t, http.MethodPut, "/api/v1/timesheet/date", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var view struct {
				Date     string `json:"date"`
				Meetings struct {
					GrandTotal string `json:"grand_total"`
				} `json:"meetings"`
			}
			if err := json.Unmarshal(env.Data, &view); err != nil {
				t.Fatalf("invalid view: %v", err)
			}
			if view.Date != tt.wantDate || view.Meetings.GrandTotal != "0.5 hour" {
				t.Errorf("unexpected view: %+v", view)
			}
		})
	}
}

func TestChangeDateRelative(t *testing.T) {
	f := newFixture(t, &mockSession{authenticated: true})

	w, _ := f.do(t, http.MethodPut, "/api/v1/timesheet/date", `{"date":"yesterday"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	want := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	if len(f.ctrl.got) != 1 || f.ctrl.got[0].Format("2006-01-02") != want {
		t.Errorf("expected %s, got %v", want, f.ctrl.got)
	}
}

func TestGetView(t *testing.T) {
	f := newFixture(t, &mockSession{authenticated: true})

	w, env := f.do(t, http.MethodGet, "/api/v1/timesheet", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var view struct {
		Active  bool `json:"active"`
		Visible bool `json:"visible"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("invalid view: %v", err)
	}
	if !view.Active || view.Visible {
		t.Errorf("expected active but nothing rendered yet, got %+v", view)
	}
}

func TestAuthFlow(t *testing.T) {
	t.Run("Login redirects with state cookie", func(t *testing.T) {
		f := newFixture(t, &mockSession{})

		w, _ := f.do(t, http.MethodGet, "/auth/login", "")
		if w.Code != http.StatusFound {
			t.Fatalf("status = %d", w.Code)
		}

		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "oauth_state" || cookies[0].Value == "" {
			t.Fatalf("unexpected cookies: %+v", cookies)
		}
		if loc := w.Header().Get("Location"); !strings.HasSuffix(loc, "state="+cookies[0].Value) {
			t.Errorf("redirect %q does not carry the state", loc)
		}
	})

	t.Run("Callback signs in", func(t *testing.T) {
		f := newFixture(t, &mockSession{})
		cookie := &http.Cookie{Name: "oauth_state", Value: "abc"}

		w, _ := f.do(t, http.MethodGet, "/auth/callback?state=abc&code=xyz", "", cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if !f.sess.authenticated || len(f.sess.codes) != 1 || f.sess.codes[0] != "xyz" {
			t.Errorf("unexpected session: %+v", f.sess)
		}
	})

	t.Run("Callback rejects wrong state", func(t *testing.T) {
		f := newFixture(t, &mockSession{})
		cookie := &http.Cookie{Name: "oauth_state", Value: "abc"}

		w, _ := f.do(t, http.MethodGet, "/auth/callback?state=evil&code=xyz", "", cookie)
		if w.Code != http.StatusBadRequest || len(f.sess.codes) != 0 {
			t.Errorf("expected 400 without exchange, got %d", w.Code)
		}
	})

	t.Run("Callback without cookie", func(t *testing.T) {
		f := newFixture(t, &mockSession{})

		w, _ := f.do(t, http.MethodGet, "/auth/callback?state=abc&code=xyz", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Logout and status", func(t *testing.T) {
		f := newFixture(t, &mockSession{authenticated: true})

		if w, _ := f.do(t, http.MethodPost, "/auth/logout", ""); w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		_, env := f.do(t, http.MethodGet, "/auth/status", "")
		var status struct {
			Authenticated bool `json:"authenticated"`
		}
		if err := json.Unmarshal(env.Data, &status); err != nil {
			t.Fatalf("invalid status: %v", err)
		}
		if status.Authenticated {
			t.Error("expected signed out")
		}
	})

	t.Run("Static session", func(t *testing.T) {
		f := newFixture(t, session.NewStaticSession(nil))

		if w, _ := f.do(t, http.MethodGet, "/auth/login", ""); w.Code != http.StatusConflict {
			t.Errorf("login: expected 409, got %d", w.Code)
		}
		if w, _ := f.do(t, http.MethodPost, "/auth/logout", ""); w.Code != http.StatusConflict {
			t.Errorf("logout: expected 409, got %d", w.Code)
		}
	})
}
