package google

import (
	"context"
	"fmt"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/pkg/gcalendar"
)

// AccessStatus is granted once OAuth credentials produced a client.
func (s *Store) AccessStatus(ctx context.Context) calendar.AccessStatus {
	if s.client == nil {
		return calendar.AccessDenied
	}
	return calendar.AccessGranted
}

// RequestAccess cannot prompt; authorization happens out of band with scripts/gcal-auth.
func (s *Store) RequestAccess(ctx context.Context) (bool, error) {
	return s.client != nil, nil
}

func (s *Store) Save(ctx context.Context, event calendar.Event) (calendar.SavedEvent, error) {
	if s.client == nil {
		return calendar.SavedEvent{}, calendar.ErrAccessDenied
	}

	created, err := s.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  s.calendarID,
		Summary:     event.Title,
		Description: event.Notes,
		Location:    event.Location,
		StartTime:   event.Start,
		EndTime:     event.End,
		Timezone:    s.timezone,
	})
	if err != nil {
		s.l.Errorf(ctx, "internal.calendar.google.Save: CreateEvent: %v", err)
		return calendar.SavedEvent{}, fmt.Errorf("google calendar: %w", err)
	}

	s.l.Infof(ctx, "internal.calendar.google.Save: created event %s", created.ID)
	return calendar.SavedEvent{
		ID:    created.ID,
		Link:  created.HtmlLink,
		Event: event,
	}, nil
}
