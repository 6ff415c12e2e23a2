package calendar

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Inserter performs the external event-insert call. The Google
// implementation is swapped out in tests.
type Inserter interface {
	Insert(ctx context.Context, token *oauth2.Token, event *calendarapi.Event) (*calendarapi.Event, error)
}

// GoogleInserter inserts events on the authenticated user's primary
// calendar using the Google Calendar API.
type GoogleInserter struct {
	oauthConfig *oauth2.Config
}

func NewGoogleInserter(oauthConfig *oauth2.Config) *GoogleInserter {
	return &GoogleInserter{oauthConfig: oauthConfig}
}

func (g *GoogleInserter) Insert(
	ctx context.Context,
	token *oauth2.Token,
	event *calendarapi.Event,
) (*calendarapi.Event, error) {

	client := g.oauthConfig.Client(ctx, token)

	service, err := calendarapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	// ConferenceDataVersion(1) is required for the createRequest to be
	// honored; without it the API strips conference data silently.
	created, err := service.Events.Insert("primary", event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return created, nil
}
