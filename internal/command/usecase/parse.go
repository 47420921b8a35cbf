package usecase

import (
	"context"
	"strings"
	"time"

	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/internal/model"
)

// Parse extracts a command from free text and records it in the user's context log.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input command.ParseInput) (command.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return command.ParseOutput{}, command.ErrEmptyInput
	}

	cmd := uc.parse(ctx, sc, text, input.Now)
	return command.ParseOutput{Command: cmd}, nil
}

func (uc *implUseCase) parse(ctx context.Context, sc model.Scope, text string, now time.Time) command.ParsedCommand {
	if now.IsZero() {
		now = uc.now()
	}

	cmd := uc.parser.Parse(text, now)
	uc.l.Infof(ctx, "internal.command.usecase.Parse: user=%s title=%q has_date=%t attendees=%d",
		userKey(sc), cmd.Title, cmd.HasDate(), len(cmd.Attendees))

	uc.history.Append(userKey(sc), command.HistoryEntry{
		Text:      text,
		Command:   cmd,
		CreatedAt: uc.now(),
	})
	return cmd
}
