package calendar

import "context"

// Store is a calendar system of record.
type Store interface {
	// AccessStatus reports the current authorization state without prompting.
	AccessStatus(ctx context.Context) AccessStatus

	// RequestAccess prompts for access and blocks until the decision is known.
	RequestAccess(ctx context.Context) (bool, error)

	// Save writes the event.
	Save(ctx context.Context, event Event) (SavedEvent, error)
}
