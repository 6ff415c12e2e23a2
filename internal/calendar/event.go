package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	calendarapi "google.golang.org/api/calendar/v3"
)

// All lesson events are scheduled in the tutoring service's timezone.
const eventTimeZone = "America/Los_Angeles"

const lessonDuration = time.Hour

// EventInput is the unified shape both request variants reduce to.
type EventInput struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Attendees   []string `json:"attendees"`
}

// Lesson is the scheduling object the frontend sends for booked
// lessons. Only the date needs parsing; everything else is copied into
// the event verbatim.
type Lesson struct {
	Course      string `json:"course"`
	Child       string `json:"child"`
	Grade       int    `json:"grade"`
	Date        string `json:"date"`
	ParentEmail string `json:"parentEmail"`
	TutorEmail  string `json:"tutorEmail"`
	ChildEmail  string `json:"childEmail"`
}

// EventInput derives the calendar event fields from a lesson: a fixed
// summary/description template, a 60-minute slot starting at the
// lesson date, and the parent/tutor (and child, when supplied) as
// attendees.
func (l Lesson) EventInput() (EventInput, error) {
	start, err := time.Parse(time.RFC3339, l.Date)
	if err != nil {
		return EventInput{}, fmt.Errorf("invalid lesson date %q: %w", l.Date, err)
	}

	attendees := []string{l.ParentEmail, l.TutorEmail}
	if l.ChildEmail != "" {
		attendees = append(attendees, l.ChildEmail)
	}

	return EventInput{
		Summary:     fmt.Sprintf("%s with %s", l.Course, l.Child),
		Description: fmt.Sprintf("Tutoring session for %s (Grade %d).", l.Child, l.Grade),
		Start:       start.Format(time.RFC3339),
		End:         start.Add(lessonDuration).Format(time.RFC3339),
		Attendees:   attendees,
	}, nil
}

// BuildEvent translates the input into the provider's event payload,
// requesting an auto-generated Meet conference.
func BuildEvent(in EventInput) *calendarapi.Event {
	attendees := make([]*calendarapi.EventAttendee, 0, len(in.Attendees))
	for _, email := range in.Attendees {
		attendees = append(attendees, &calendarapi.EventAttendee{Email: email})
	}

	return &calendarapi.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start: &calendarapi.EventDateTime{
			DateTime: in.Start,
			TimeZone: eventTimeZone,
		},
		End: &calendarapi.EventDateTime{
			DateTime: in.End,
			TimeZone: eventTimeZone,
		},
		Attendees: attendees,
		ConferenceData: &calendarapi.ConferenceData{
			CreateRequest: &calendarapi.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendarapi.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}
}

// MeetLink extracts the video entry point from a created event. The
// second return is false when the provider generated no video
// conference entry, which callers report as a null link, not an error.
func MeetLink(ev *calendarapi.Event) (string, bool) {
	if ev == nil || ev.ConferenceData == nil {
		return "", false
	}
	for _, ep := range ev.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			return ep.Uri, true
		}
	}
	return "", false
}
