package google

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const providerName = "google"

// CalendarScope grants full read/write access to the user's calendars.
// Event insertion with conference data requires it; the narrower
// calendar.events scope would also work but is not what the frontend
// consents were registered with.
const CalendarScope = "https://www.googleapis.com/auth/calendar"

type Provider struct {
	oauthConfig *oauth2.Config
}

func New(
	clientID string,
	clientSecret string,
	redirectURI string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURI == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			CalendarScope,
		},
	}

	return &Provider{
		oauthConfig: oauthCfg,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the consent URL. Offline access is requested so a
// refresh token is issued, and consent is forced so Google returns one
// even when the user authorized before.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
	)
}

func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}
	return token, nil
}

// OAuthConfig exposes the underlying config so API clients can be
// built from a stored token.
func (p *Provider) OAuthConfig() *oauth2.Config {
	return p.oauthConfig
}
