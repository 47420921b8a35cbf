package usecase

import (
	"context"
	"errors"
	"strings"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/internal/model"
)

// AddToCalendar writes a command to the calendar store. Free text takes
// precedence over a pre-parsed command.
func (uc *implUseCase) AddToCalendar(ctx context.Context, sc model.Scope, input command.AddInput) (command.AddOutput, error) {
	var cmd command.ParsedCommand

	switch text := strings.TrimSpace(input.Text); {
	case text != "":
		cmd = uc.parse(ctx, sc, text, input.Now)
	case input.Command != nil:
		cmd = *input.Command
	default:
		return command.AddOutput{}, command.ErrMissingCommand
	}

	saved, err := calendar.AddEvent(ctx, uc.store, cmd.ToEventDraft())
	if err != nil {
		if errors.Is(err, calendar.ErrSaveFailed) {
			uc.l.Errorf(ctx, "internal.command.usecase.AddToCalendar: user=%s: %v", userKey(sc), err)
		} else {
			uc.l.Warnf(ctx, "internal.command.usecase.AddToCalendar: user=%s: %v", userKey(sc), err)
		}
		return command.AddOutput{Command: cmd}, err
	}

	uc.l.Infof(ctx, "internal.command.usecase.AddToCalendar: user=%s event=%s", userKey(sc), saved.ID)
	return command.AddOutput{Command: cmd, Event: saved}, nil
}
