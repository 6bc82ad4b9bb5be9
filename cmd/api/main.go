package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily-timesheet/config"
	_ "daily-timesheet/docs" // Swagger docs
	"daily-timesheet/internal/httpserver"
	"daily-timesheet/internal/session"
	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/controller"
	timesheetHTTP "daily-timesheet/internal/timesheet/delivery/http"
	"daily-timesheet/internal/timesheet/repository"
	gcalRepo "daily-timesheet/internal/timesheet/repository/gcal"
	icsRepo "daily-timesheet/internal/timesheet/repository/ics"
	"daily-timesheet/internal/timesheet/usecase"
	"daily-timesheet/pkg/datemath"
	"daily-timesheet/pkg/ics"
	"daily-timesheet/pkg/log"

	"github.com/joho/godotenv"
)

// @title       Daily Timesheet API
// @description Daily timesheet built from a meeting calendar and a task calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional and only feeds the environment)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			fmt.Println("Google Calendar credentials are missing: set google_calendar.credentials_path or google_calendar.client_id and client_secret")
		}
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Timesheet...")
	logger.Infof(ctx, "Environment: %s, source: %s", cfg.Environment.Name, cfg.Timesheet.Source)

	// 3. Date math in the configured zone
	dateMathParser, err := datemath.NewParser(cfg.Timesheet.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timesheet.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Session + calendar source
	sess, repo, err := newSource(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize calendar source: ", err)
		return
	}

	// 5. Timesheet domain
	tsCfg := timesheet.Config{
		MeetingCalendarID: cfg.Timesheet.MeetingCalendarID,
		TaskCalendarID:    cfg.Timesheet.TaskCalendarID,
		TicketPrefix:      cfg.Timesheet.TicketPrefix,
		TicketURL:         cfg.Timesheet.TicketURL,
	}
	uc := usecase.New(logger, repo, dateMathParser, tsCfg)
	board := timesheetHTTP.NewBoard(tsCfg.TicketURL)
	ctrl := controller.New(logger, uc, board, dateMathParser)
	sess.OnAuthChange(ctrl.OnAuthChange)

	scheduler, err := controller.NewScheduler(logger, ctrl, cfg.Timesheet.RolloverCron, dateMathParser.Location())
	if err != nil {
		logger.Error(ctx, "Failed to initialize rollover job: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Controller:      ctrl,
		Board:           board,
		Session:         sess,
		DateMath:        dateMathParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Restore the session; an authenticated one activates the timesheet.
	if err := sess.Restore(ctx); err != nil {
		logger.Warnf(ctx, "Could not restore session: %v", err)
	}

	scheduler.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		scheduler.Stop(stopCtx)
	}()

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newSource builds the session and the EventRepository for cfg.Timesheet.Source.
func newSource(ctx context.Context, cfg *config.Config, logger log.Logger) (session.Provider, repository.EventRepository, error) {
	switch cfg.Timesheet.Source {
	case config.SourceICS:
		fetcher := ics.NewFetcher(cfg.ICS.Timeout)
		return session.NewStaticSession(nil), icsRepo.New(fetcher, logger), nil

	default:
		if cfg.GoogleCalendar.UsesOAuth() {
			sess := session.NewOAuthSession(logger, session.OAuthConfig{
				ClientID:     cfg.GoogleCalendar.ClientID,
				ClientSecret: cfg.GoogleCalendar.ClientSecret,
				RedirectURL:  cfg.GoogleCalendar.RedirectURL,
				TokenPath:    cfg.GoogleCalendar.TokenPath,
			})
			logger.Info(ctx, "Google Calendar: web sign-in at /auth/login")
			return sess, gcalRepo.New(sess, logger), nil
		}

		sess, err := session.NewStaticSessionFromFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
			return nil, nil, err
		}
		logger.Info(ctx, "Google Calendar initialized from credentials file")
		return sess, gcalRepo.New(sess, logger), nil
	}
}
