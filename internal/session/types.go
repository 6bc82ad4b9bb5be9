package session

import "golang.org/x/oauth2"

// OAuthConfig configures the web sign-in flow.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenPath    string // empty disables persistence

	// Endpoint defaults to Google's.
	Endpoint oauth2.Endpoint
}
