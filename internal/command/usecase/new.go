package usecase

import (
	"time"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/internal/history"
	pkgLog "voice-calendar-assistant/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	parser  command.Parser
	store   calendar.Store
	history *history.Log[command.HistoryEntry]
	now     func() time.Time
}

var _ command.UseCase = (*implUseCase)(nil)

// New creates a new command UseCase instance. A nil clock uses time.Now.
func New(
	l pkgLog.Logger,
	parser command.Parser,
	store calendar.Store,
	hist *history.Log[command.HistoryEntry],
	clock func() time.Time,
) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:       l,
		parser:  parser,
		store:   store,
		history: hist,
		now:     clock,
	}
}
