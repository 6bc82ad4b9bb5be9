package httpserver

import (
	"context"

	"daily-timesheet/internal/middleware"
	timesheetHTTP "daily-timesheet/internal/timesheet/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupTimesheetDomain registers the timesheet and sign-in routes.
// The usecase and controller are built in main because the session and the
// rollover job need them before the server starts.
func (srv HTTPServer) setupTimesheetDomain(ctx context.Context, api, auth *gin.RouterGroup, mw middleware.Middleware) error {
	h := timesheetHTTP.New(srv.l, srv.controller, srv.board, srv.session, srv.dateMath)

	// /api/v1/timesheet
	timesheetHTTP.RegisterRoutes(api.Group("/timesheet"), h, mw)
	// /auth/login, /auth/callback, /auth/logout, /auth/status
	timesheetHTTP.RegisterAuthRoutes(auth, h, mw)

	srv.l.Infof(ctx, "Timesheet domain registered")
	return nil
}
