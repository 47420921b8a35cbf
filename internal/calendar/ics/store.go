package ics

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/pkg/icsfile"
)

// AccessStatus maps the calendar directory onto the access states:
// present means granted, missing means the user has not been asked yet.
func (s *Store) AccessStatus(ctx context.Context) calendar.AccessStatus {
	if s.readOnly {
		return calendar.AccessDenied
	}

	info, err := os.Stat(s.file.Dir())
	switch {
	case err == nil && info.IsDir():
		return calendar.AccessGranted
	case errors.Is(err, fs.ErrNotExist):
		return calendar.AccessNotDetermined
	default:
		return calendar.AccessDenied
	}
}

// RequestAccess creates the calendar directory.
func (s *Store) RequestAccess(ctx context.Context) (bool, error) {
	if s.readOnly {
		return false, nil
	}
	if err := os.MkdirAll(s.file.Dir(), 0o755); err != nil {
		s.l.Warnf(ctx, "internal.calendar.ics.RequestAccess: mkdir %s: %v", s.file.Dir(), err)
		return false, err
	}
	s.l.Infof(ctx, "internal.calendar.ics.RequestAccess: created %s", s.file.Dir())
	return true, nil
}

func (s *Store) Save(ctx context.Context, event calendar.Event) (calendar.SavedEvent, error) {
	if s.readOnly {
		return calendar.SavedEvent{}, calendar.ErrAccessDenied
	}

	created, err := s.file.AddEvent(ctx, icsfile.CreateEventRequest{
		Summary:     event.Title,
		Description: event.Notes,
		Location:    event.Location,
		StartTime:   event.Start,
		EndTime:     event.End,
	})
	if err != nil {
		s.l.Errorf(ctx, "internal.calendar.ics.Save: AddEvent: %v", err)
		return calendar.SavedEvent{}, fmt.Errorf("ics file: %w", err)
	}

	return calendar.SavedEvent{
		ID:    created.UID,
		Link:  "file://" + s.file.Path(),
		Event: event,
	}, nil
}
