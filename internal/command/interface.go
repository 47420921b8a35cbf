package command

import (
	"context"
	"time"

	"voice-calendar-assistant/internal/model"
)

// Parser turns one line of natural-language text into a ParsedCommand.
// Implementations must be pure: same text and now, same result.
type Parser interface {
	Parse(text string, now time.Time) ParsedCommand
}

// UseCase defines the business logic interface for the command domain.
type UseCase interface {
	// Parse extracts a structured command and records it in the user's context log.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// AddToCalendar writes the command to the configured calendar store.
	// Errors: calendar.ErrAccessDenied, calendar.ErrInvalidDate, *calendar.SaveFailedError.
	AddToCalendar(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)

	// History returns the user's recent commands.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// ClearHistory drops the user's context log.
	ClearHistory(ctx context.Context, sc model.Scope) error
}
