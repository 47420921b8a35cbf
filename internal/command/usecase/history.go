package usecase

import (
	"context"

	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/internal/model"
)

// anonymousUser keys the context log of callers without a user ID.
const anonymousUser = "anonymous"

func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (command.HistoryOutput, error) {
	entries := uc.history.Recent(userKey(sc))
	return command.HistoryOutput{
		Entries: entries,
		Count:   len(entries),
	}, nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	uc.history.Clear(userKey(sc))
	uc.l.Infof(ctx, "internal.command.usecase.ClearHistory: user=%s", userKey(sc))
	return nil
}

func userKey(sc model.Scope) string {
	if sc.IsZero() {
		return anonymousUser
	}
	return sc.UserID
}
