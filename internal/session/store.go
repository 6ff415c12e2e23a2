package session

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// Lifetime bounds how long a session may be used regardless of the
// token's own expiry.
const Lifetime = 24 * time.Hour

// Session holds the OAuth token set obtained for one browser. It is
// looked up by the opaque session ID carried in the cookie; nothing
// else is persisted per user.
type Session struct {
	SessionID string        `json:"session_id"`
	Token     *oauth2.Token `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Store defines how sessions are stored and retrieved. Implementations
// must treat the session as opaque state that can vanish at any time.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
