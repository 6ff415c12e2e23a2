package provider

import (
	"context"

	"golang.org/x/oauth2"
)

// OAuthProvider defines the contract the calendar OAuth provider must
// implement. Implementations broker the authorization flow only; they
// make no session or auth decisions.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "google").
	Name() string

	// AuthCodeURL returns the provider consent URL. State is provided
	// by the caller.
	AuthCodeURL(state string) string

	// Exchange trades the one-time authorization code for a token set.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}
