package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"

	"github.com/krishayk/calendar-backend/internal/middleware"
	"github.com/krishayk/calendar-backend/internal/session"
)

type fakeInserter struct {
	calls    int
	lastEv   *calendarapi.Event
	response *calendarapi.Event
	err      error
}

func (f *fakeInserter) Insert(
	_ context.Context,
	_ *oauth2.Token,
	event *calendarapi.Event,
) (*calendarapi.Event, error) {
	f.calls++
	f.lastEv = event
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

const testSecret = "test-secret"

// newTestRouter wires the calendar handler behind the auth gate the
// same way the app does.
func newTestRouter(t *testing.T, inserter Inserter) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	auth := middleware.NewAuthMiddleware(store, testSecret)

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(auth))
	NewHandler(inserter).RegisterRoutes(api)

	return router, store
}

func authedCookie(t *testing.T, store session.Store) *http.Cookie {
	t.Helper()

	id, err := session.GenerateID()
	require.NoError(t, err)

	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: id,
		Token: &oauth2.Token{
			AccessToken: "access",
			Expiry:      time.Now().Add(time.Hour),
		},
		ExpiresAt: time.Now().Add(session.Lifetime),
	}))

	return &http.Cookie{
		Name:  session.CookieName,
		Value: session.SignValue(testSecret, id),
	}
}

func post(router *gin.Engine, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createdEvent(meet bool) *calendarapi.Event {
	ev := &calendarapi.Event{
		HtmlLink: "https://calendar.google.com/event?eid=abc",
	}
	if meet {
		ev.ConferenceData = &calendarapi.ConferenceData{
			EntryPoints: []*calendarapi.EntryPoint{
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		}
	}
	return ev
}

func TestCreateEventUnauthenticatedSkipsExternalCall(t *testing.T) {
	fake := &fakeInserter{response: createdEvent(true)}
	router, _ := newTestRouter(t, fake)

	w := post(router, "/api/create-event", `{"summary":"s"}`, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"not authenticated"}`, w.Body.String())
	assert.Zero(t, fake.calls)
}

func TestCreateEvent(t *testing.T) {
	fake := &fakeInserter{response: createdEvent(true)}
	router, store := newTestRouter(t, fake)

	body := `{
		"summary": "Algebra with Sam",
		"description": "desc",
		"start": "2024-01-01T10:00:00-08:00",
		"end": "2024-01-01T11:00:00-08:00",
		"attendees": ["p@x.com", "t@x.com"]
	}`

	w := post(router, "/api/create-event", body, authedCookie(t, store))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"htmlLink": "https://calendar.google.com/event?eid=abc",
		"meetLink": "https://meet.google.com/abc-defg-hij"
	}`, w.Body.String())

	require.Equal(t, 1, fake.calls)
	assert.Equal(t, "Algebra with Sam", fake.lastEv.Summary)
	assert.Len(t, fake.lastEv.Attendees, 2)
}

func TestCreateEventOAuthAlias(t *testing.T) {
	fake := &fakeInserter{response: createdEvent(true)}
	router, store := newTestRouter(t, fake)

	w := post(router, "/api/create-event-oauth", `{"summary":"s"}`, authedCookie(t, store))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.calls)
}

func TestCreateEventNoVideoEntryPointReportsNull(t *testing.T) {
	fake := &fakeInserter{response: createdEvent(false)}
	router, store := newTestRouter(t, fake)

	w := post(router, "/api/create-event", `{"summary":"s"}`, authedCookie(t, store))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"htmlLink": "https://calendar.google.com/event?eid=abc",
		"meetLink": null
	}`, w.Body.String())
}

func TestCreateEventExternalFailure(t *testing.T) {
	fake := &fakeInserter{err: errors.New("googleapi: Error 403: insufficient permissions")}
	router, store := newTestRouter(t, fake)

	w := post(router, "/api/create-event", `{"summary":"s"}`, authedCookie(t, store))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// Detail stays server-side; the client gets a generic message.
	assert.JSONEq(t, `{"error":"failed to create event"}`, w.Body.String())
}

func TestGenerateMeetLink(t *testing.T) {
	fake := &fakeInserter{response: createdEvent(true)}
	router, store := newTestRouter(t, fake)

	body := `{"lesson": {
		"course": "Algebra",
		"child": "Sam",
		"grade": 8,
		"date": "2024-01-01T10:00:00-08:00",
		"parentEmail": "p@x.com",
		"tutorEmail": "t@x.com"
	}}`

	w := post(router, "/api/generate-meet-link", body, authedCookie(t, store))

	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, 1, fake.calls)
	ev := fake.lastEv
	assert.Equal(t, "Algebra with Sam", ev.Summary)
	assert.Equal(t, "Tutoring session for Sam (Grade 8).", ev.Description)
	assert.Equal(t, "2024-01-01T10:00:00-08:00", ev.Start.DateTime)
	assert.Equal(t, "2024-01-01T11:00:00-08:00", ev.End.DateTime)
	require.Len(t, ev.Attendees, 2)
	assert.Equal(t, "p@x.com", ev.Attendees[0].Email)
	assert.Equal(t, "t@x.com", ev.Attendees[1].Email)
}

func TestGenerateMeetLinkBadDate(t *testing.T) {
	fake := &fakeInserter{response: createdEvent(true)}
	router, store := newTestRouter(t, fake)

	w := post(router, "/api/generate-meet-link",
		`{"lesson": {"course": "Algebra", "child": "Sam", "date": "tomorrow"}}`,
		authedCookie(t, store))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid lesson date"}`, w.Body.String())
	assert.Zero(t, fake.calls)
}
