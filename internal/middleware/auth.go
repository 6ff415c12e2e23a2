package middleware

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/krishayk/calendar-backend/internal/session"
)

// unexported, collision-proof context key
type tokenContextKeyType struct{}

var tokenKey = tokenContextKeyType{}

// TokenFromContext extracts the session's OAuth token from context.
func TokenFromContext(ctx context.Context) (*oauth2.Token, bool) {
	tok, ok := ctx.Value(tokenKey).(*oauth2.Token)
	return tok, ok
}

// HasValidToken reports whether the token exists and has not passed
// its declared expiry. The check is purely time-based; the provider is
// never contacted and no refresh is attempted.
func HasValidToken(tok *oauth2.Token) bool {
	if tok == nil || tok.AccessToken == "" {
		return false
	}
	if !tok.Expiry.IsZero() && time.Now().After(tok.Expiry) {
		return false
	}
	return true
}

type AuthMiddleware struct {
	Store  session.Store
	Secret string
}

func NewAuthMiddleware(store session.Store, secret string) *AuthMiddleware {
	return &AuthMiddleware{Store: store, Secret: secret}
}

// LoadToken resolves the request's session cookie to its stored token
// set. It returns nil (not an error) when no usable session exists.
func (a *AuthMiddleware) LoadToken(r *http.Request) *oauth2.Token {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sessionID, ok := session.VerifyValue(a.Secret, cookie.Value)
	if !ok {
		return nil
	}

	sess, err := a.Store.Get(r.Context(), sessionID)
	if err != nil || sess == nil {
		return nil
	}

	return sess.Token
}

// RequireAuth guards calendar-mutating operations. A request without
// tokens is rejected before any external call is made.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := a.LoadToken(r)

		if tok == nil || tok.AccessToken == "" {
			writeJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		if !tok.Expiry.IsZero() && time.Now().After(tok.Expiry) {
			writeJSONError(w, http.StatusUnauthorized, "token expired")
			return
		}

		ctx := context.WithValue(r.Context(), tokenKey, tok)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
