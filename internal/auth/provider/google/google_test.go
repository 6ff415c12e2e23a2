package google

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresCredentials(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		redirect     string
	}{
		{"missing client id", "", "secret", "https://api.example.com/auth/google/callback"},
		{"missing client secret", "id", "", "https://api.example.com/auth/google/callback"},
		{"missing redirect uri", "id", "secret", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.clientID, tt.clientSecret, tt.redirect)
			assert.Error(t, err)
		})
	}
}

func TestAuthCodeURL(t *testing.T) {
	p, err := New("client-id", "client-secret", "https://api.example.com/auth/google/callback")
	require.NoError(t, err)

	raw := p.AuthCodeURL("the-state")

	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "the-state", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, CalendarScope, q.Get("scope"))
	assert.Equal(t, "https://api.example.com/auth/google/callback", q.Get("redirect_uri"))
}
