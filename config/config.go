package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"daily-timesheet/internal/timesheet"

	"github.com/spf13/viper"
)

const (
	SourceGoogle = "google"
	SourceICS    = "ics"
)

var (
	// ErrMissingCredentials is returned when the Google source has neither a
	// credentials file nor an OAuth client id/secret pair.
	ErrMissingCredentials  = timesheet.ErrMissingCredentials
	ErrMissingTaskCalendar = errors.New("timesheet.task_calendar_id is required")
	ErrUnknownSource       = errors.New("unknown timesheet.source")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Timesheet specifics
	Timesheet      TimesheetConfig
	GoogleCalendar GoogleCalendarConfig
	ICS            ICSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type TimesheetConfig struct {
	Source            string // google or ics
	MeetingCalendarID string // ICS URL when Source is ics
	TaskCalendarID    string
	TicketPrefix      string
	TicketURL         string
	Timezone          string
	RolloverCron      string
}

type GoogleCalendarConfig struct {
	// Static session: service account key or installed-app credentials + token.
	CredentialsPath string

	// Web sign-in session.
	ClientID     string
	ClientSecret string
	RedirectURL  string

	TokenPath string
}

// UsesOAuth reports whether the web sign-in flow is configured.
func (g GoogleCalendarConfig) UsesOAuth() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type ICSConfig struct {
	Timeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Timesheet
	cfg.Timesheet.Source = strings.ToLower(viper.GetString("timesheet.source"))
	cfg.Timesheet.MeetingCalendarID = viper.GetString("timesheet.meeting_calendar_id")
	cfg.Timesheet.TaskCalendarID = viper.GetString("timesheet.task_calendar_id")
	cfg.Timesheet.TicketPrefix = viper.GetString("timesheet.ticket_prefix")
	cfg.Timesheet.TicketURL = viper.GetString("timesheet.ticket_url")
	cfg.Timesheet.Timezone = viper.GetString("timesheet.timezone")
	cfg.Timesheet.RolloverCron = viper.GetString("timesheet.rollover_cron")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.ClientID = viper.GetString("google_calendar.client_id")
	cfg.GoogleCalendar.ClientSecret = viper.GetString("google_calendar.client_secret")
	cfg.GoogleCalendar.RedirectURL = viper.GetString("google_calendar.redirect_url")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// ICS
	cfg.ICS.Timeout = viper.GetDuration("ics.timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Timesheet.TaskCalendarID == "" {
		return ErrMissingTaskCalendar
	}

	switch cfg.Timesheet.Source {
	case SourceGoogle:
		if cfg.GoogleCalendar.CredentialsPath == "" && !cfg.GoogleCalendar.UsesOAuth() {
			return ErrMissingCredentials
		}
	case SourceICS:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Timesheet.Source)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("timesheet.source", SourceGoogle)
	viper.SetDefault("timesheet.meeting_calendar_id", "primary")
	viper.SetDefault("timesheet.timezone", "UTC")
	viper.SetDefault("timesheet.rollover_cron", "0 0 * * *")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("ics.timeout", 15*time.Second)
}
