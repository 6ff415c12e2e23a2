package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krishayk/calendar-backend/internal/auth/provider"
	"github.com/krishayk/calendar-backend/internal/logger"
	"github.com/krishayk/calendar-backend/internal/middleware"
	"github.com/krishayk/calendar-backend/internal/session"
)

// Handler brokers the OAuth authorization flow: consent redirect, code
// exchange, session establishment, and logout.
type Handler struct {
	provider       provider.OAuthProvider
	sessionStore   session.Store
	sessionSecret  string
	frontendOrigin string
}

func NewHandler(
	p provider.OAuthProvider,
	sessionStore session.Store,
	sessionSecret string,
	frontendOrigin string,
) *Handler {
	return &Handler{
		provider:       p,
		sessionStore:   sessionStore,
		sessionSecret:  sessionSecret,
		frontendOrigin: frontendOrigin,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/auth/google", h.authorize)
	r.GET("/auth/google/callback", h.callback)
	r.GET("/auth/logout", h.logout)
	r.GET("/api/check-auth", h.checkAuth)
}

func (h *Handler) authorize(c *gin.Context) {
	state := generateState(c)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

func (h *Handler) callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing authorization code",
		})
		return
	}

	if !validateState(c) {
		logger.Warn("oauth callback state mismatch", map[string]any{
			"provider": h.provider.Name(),
		})
		h.redirectWithError(c)
		return
	}

	token, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("oauth code exchange failed", map[string]any{
			"provider": h.provider.Name(),
			"error":    err.Error(),
		})
		h.redirectWithError(c)
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	expiresAt := time.Now().Add(session.Lifetime)

	sess := session.Session{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to persist session",
		})
		return
	}

	cookieValue := session.SignValue(h.sessionSecret, sessionID)
	session.SetCookie(c.Writer, cookieValue, expiresAt, session.CookieOptions{})

	logger.Info("oauth authorization established", map[string]any{
		"provider":      h.provider.Name(),
		"has_refresh":   token.RefreshToken != "",
		"token_expires": token.Expiry.Unix(),
	})

	c.Redirect(http.StatusFound, h.frontendOrigin)
}

// checkAuth reports whether the session carries usable tokens. It
// never fails; every miss is just "not authenticated".
func (h *Handler) checkAuth(c *gin.Context) {
	authenticated := false

	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		if sessionID, ok := session.VerifyValue(h.sessionSecret, cookie.Value); ok {
			sess, err := h.sessionStore.Get(c.Request.Context(), sessionID)
			if err == nil && sess != nil {
				authenticated = middleware.HasValidToken(sess.Token)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}

func (h *Handler) logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil {
		if sessionID, ok := session.VerifyValue(h.sessionSecret, cookie.Value); ok {
			// Best-effort: the cookie is cleared regardless.
			_ = h.sessionStore.Delete(c.Request.Context(), sessionID)
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{})

	c.Redirect(http.StatusFound, h.frontendOrigin)
}

func (h *Handler) redirectWithError(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendOrigin+"?error=auth_failed")
}
