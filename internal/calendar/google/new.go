package google

import (
	"context"

	"voice-calendar-assistant/pkg/gcalendar"
	"voice-calendar-assistant/pkg/log"
)

// Client is the part of the Google Calendar client this store needs.
type Client interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Store writes events to a Google Calendar.
type Store struct {
	l          log.Logger
	client     Client
	calendarID string
	timezone   string
}

// New creates a Google-backed calendar store.
// A nil client yields a store that always reports access as denied.
func New(l log.Logger, client Client, calendarID, timezone string) *Store {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &Store{
		l:          l,
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
