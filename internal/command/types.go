package command

import (
	"time"

	"voice-calendar-assistant/internal/calendar"
)

// Action is the kind of operation a command asks for.
type Action string

// ActionAdd is the only action produced today.
const ActionAdd Action = "add"

const (
	// DefaultTitle replaces an empty extracted title.
	DefaultTitle = "새로운 일정"
	// DefaultDuration applies when the command has no duration cue.
	DefaultDuration = time.Hour
)

// ParsedCommand is the structured form of one natural-language scheduling request.
// It is built once per parse call and never mutated afterwards.
type ParsedCommand struct {
	Action      Action
	Date        *time.Time // nil when no date expression was recognised
	Title       string     // never empty
	Description string     // reserved, always empty
	Attendees   []string   // group labels, in family → friend → colleague order
	Location    string     // empty when absent
	Duration    time.Duration
}

// HasDate reports whether a date was extracted.
func (c ParsedCommand) HasDate() bool {
	return c.Date != nil
}

// HasLocation reports whether a location was extracted.
func (c ParsedCommand) HasLocation() bool {
	return c.Location != ""
}

// ToEventDraft converts the command into the calendar package's draft form.
func (c ParsedCommand) ToEventDraft() calendar.Draft {
	d := calendar.Draft{
		Title:       c.Title,
		Description: c.Description,
		Attendees:   c.Attendees,
		Location:    c.Location,
		Duration:    c.Duration,
	}
	if c.Date != nil {
		start := *c.Date
		d.Start = &start
	}
	return d
}

// HistoryEntry is one recorded parse in a user's context log.
type HistoryEntry struct {
	Text      string
	Command   ParsedCommand
	CreatedAt time.Time
}

// ParseInput is the input for parsing a command.
type ParseInput struct {
	Text string
	Now  time.Time // zero means "use the clock"
}

// ParseOutput is the result of parsing a command.
type ParseOutput struct {
	Command ParsedCommand
}

// AddInput is the input for adding a command to the calendar.
// Command is used when Text is empty.
type AddInput struct {
	Text    string
	Command *ParsedCommand
	Now     time.Time
}

// AddOutput is the result of a successful calendar write.
type AddOutput struct {
	Command ParsedCommand
	Event   calendar.SavedEvent
}

// HistoryOutput lists a user's recent commands, oldest first.
type HistoryOutput struct {
	Entries []HistoryEntry
	Count   int
}
