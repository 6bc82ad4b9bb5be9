package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"daily-timesheet/pkg/gcalendar"
	pkgLog "daily-timesheet/pkg/log"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthSession signs a user in with the OAuth2 web flow and keeps the token on disk.
type OAuthSession struct {
	l         pkgLog.Logger
	conf      *oauth2.Config
	tokenPath string
	listeners listeners

	mu     sync.RWMutex
	client *gcalendar.Client
}

var _ Provider = (*OAuthSession)(nil)

// NewOAuthSession creates a signed-out session.
func NewOAuthSession(l pkgLog.Logger, cfg OAuthConfig) *OAuthSession {
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	return &OAuthSession{
		l: l,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{gcalendar.Scope},
		},
		tokenPath: cfg.TokenPath,
	}
}

// AuthCodeURL returns the consent page URL carrying state.
func (s *OAuthSession) AuthCodeURL(state string) string {
	return s.conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (s *OAuthSession) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}

func (s *OAuthSession) OnAuthChange(fn Listener) {
	s.listeners.add(fn)
}

// Restore picks up a token saved by an earlier sign-in or by scripts/gcal-auth.
func (s *OAuthSession) Restore(ctx context.Context) error {
	if s.tokenPath != "" {
		tok, err := gcalendar.ReadToken(s.tokenPath)
		switch {
		case err == nil:
			if err := s.use(tok); err != nil {
				return err
			}
			s.l.Infof(ctx, "session.Restore: token loaded from %s", s.tokenPath)
		case errors.Is(err, gcalendar.ErrMissingToken):
			s.l.Infof(ctx, "session.Restore: no saved token, waiting for sign-in")
		default:
			return err
		}
	}

	s.listeners.notify(ctx, s.IsAuthenticated())
	return nil
}

// SignIn exchanges an authorization code for a token.
func (s *OAuthSession) SignIn(ctx context.Context, code string) error {
	if code == "" {
		return ErrEmptyCode
	}

	tok, err := s.conf.Exchange(ctx, code)
	if err != nil {
		s.l.Errorf(ctx, "session.SignIn: exchange: %v", err)
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if s.tokenPath != "" {
		if err := gcalendar.WriteToken(s.tokenPath, tok); err != nil {
			s.l.Warnf(ctx, "session.SignIn: %v", err)
		}
	}

	if err := s.use(tok); err != nil {
		return err
	}

	s.l.Infof(ctx, "session.SignIn: signed in")
	s.listeners.notify(ctx, true)
	return nil
}

// SignOut forgets the token, in memory and on disk.
func (s *OAuthSession) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.client = nil
	s.mu.Unlock()

	if s.tokenPath != "" {
		if err := os.Remove(s.tokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.l.Warnf(ctx, "session.SignOut: %v", err)
		}
	}

	s.l.Infof(ctx, "session.SignOut: signed out")
	s.listeners.notify(ctx, false)
	return nil
}

func (s *OAuthSession) Client(ctx context.Context) (*gcalendar.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.client == nil {
		return nil, ErrNotAuthenticated
	}
	return s.client, nil
}

// use builds the calendar client for tok. The token source refreshes in the
// background, so it is not tied to any request context.
func (s *OAuthSession) use(tok *oauth2.Token) error {
	bg := context.Background()
	client, err := gcalendar.NewClientFromTokenSource(bg, s.conf.TokenSource(bg, tok))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	return nil
}
