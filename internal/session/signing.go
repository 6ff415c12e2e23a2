package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SignValue binds the session ID to the configured secret so a cookie
// minted elsewhere is rejected even if the ID were guessed. With an
// empty secret the ID is used bare (local development).
func SignValue(secret, sessionID string) string {
	if secret == "" {
		return sessionID
	}
	return sessionID + "." + signature(secret, sessionID)
}

// VerifyValue checks the cookie value's signature and returns the
// embedded session ID.
func VerifyValue(secret, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	if secret == "" {
		return value, true
	}

	sessionID, sig, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" {
		return "", false
	}

	if !hmac.Equal([]byte(sig), []byte(signature(secret, sessionID))) {
		return "", false
	}

	return sessionID, true
}

func signature(secret, sessionID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
