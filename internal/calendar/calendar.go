package calendar

import (
	"context"
	"time"
)

// DefaultDuration is used when a draft carries no positive duration.
const DefaultDuration = time.Hour

// RequestAccess resolves the store's tri-state authorization into a yes/no.
// A NotDetermined store is prompted; a prompt error counts as denial.
func RequestAccess(ctx context.Context, store Store) bool {
	switch store.AccessStatus(ctx) {
	case AccessGranted:
		return true
	case AccessNotDetermined:
		granted, err := store.RequestAccess(ctx)
		if err != nil {
			return false
		}
		return granted
	default:
		return false
	}
}

// BuildEvent converts a draft into the event written to a store.
func BuildEvent(d Draft) (Event, error) {
	if d.Start == nil {
		return Event{}, ErrInvalidDate
	}

	duration := d.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	start := *d.Start
	return Event{
		Title:    d.Title,
		Notes:    BuildNotes(d.Description, d.Attendees),
		Location: d.Location,
		Start:    start,
		End:      start.Add(duration),
	}, nil
}

// AddEvent writes the draft to store. Access is checked before the date, so a
// denied store reports ErrAccessDenied even for a draft without a date.
// Failed saves are returned once as *SaveFailedError; nothing is retried.
func AddEvent(ctx context.Context, store Store, d Draft) (SavedEvent, error) {
	if !RequestAccess(ctx, store) {
		return SavedEvent{}, ErrAccessDenied
	}

	event, err := BuildEvent(d)
	if err != nil {
		return SavedEvent{}, err
	}

	saved, err := store.Save(ctx, event)
	if err != nil {
		return SavedEvent{}, &SaveFailedError{Reason: err.Error()}
	}
	return saved, nil
}
