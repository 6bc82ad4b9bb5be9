package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-timesheet/internal/session"
	timesheetHTTP "daily-timesheet/internal/timesheet/delivery/http"
	"daily-timesheet/pkg/datemath"
	"daily-timesheet/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int

	// Timesheet domain
	controller timesheetHTTP.Controller
	board      *timesheetHTTP.Board
	session    session.Provider
	dateMath   *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Timesheet domain
	Controller timesheetHTTP.Controller
	Board      *timesheetHTTP.Board
	Session    session.Provider
	DateMath   *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimitPerMin,
		controller:  cfg.Controller,
		board:       cfg.Board,
		session:     cfg.Session,
		dateMath:    cfg.DateMath,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.controller == nil || srv.board == nil || srv.session == nil || srv.dateMath == nil {
		return errors.New("timesheet dependencies are required")
	}
	return nil
}
