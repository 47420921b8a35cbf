package http

import (
	"time"

	"voice-calendar-assistant/internal/command"
)

// --- Request DTOs ---

type parseReq struct {
	Text string    `json:"text" binding:"required,max=1000"`
	Now  time.Time `json:"now"`
}

func (r parseReq) toInput() command.ParseInput {
	return command.ParseInput{
		Text: r.Text,
		Now:  r.Now,
	}
}

type addReq struct {
	Text    string      `json:"text" binding:"max=1000"`
	Command *commandReq `json:"command"`
	Now     time.Time   `json:"now"`
}

type commandReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Attendees   []string   `json:"attendees"`
	Location    string     `json:"location"`
	DurationMin int        `json:"duration_minutes" binding:"min=0"`
}

func (r addReq) validate() error {
	if r.Text == "" && r.Command == nil {
		return command.ErrMissingCommand
	}
	return nil
}

func (r addReq) toInput() command.AddInput {
	input := command.AddInput{
		Text: r.Text,
		Now:  r.Now,
	}
	if r.Command != nil {
		title := r.Command.Title
		if title == "" {
			title = command.DefaultTitle
		}
		duration := time.Duration(r.Command.DurationMin) * time.Minute
		if duration <= 0 {
			duration = command.DefaultDuration
		}
		input.Command = &command.ParsedCommand{
			Action:      command.ActionAdd,
			Date:        r.Command.Date,
			Title:       title,
			Description: r.Command.Description,
			Attendees:   r.Command.Attendees,
			Location:    r.Command.Location,
			Duration:    duration,
		}
	}
	return input
}

// --- Response DTOs ---

type previewRowResp struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type commandResp struct {
	Action      string           `json:"action"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Attendees   []string         `json:"attendees"`
	Location    string           `json:"location,omitempty"`
	DurationMin int              `json:"duration_minutes"`
	Preview     []previewRowResp `json:"preview"`
}

func newCommandResp(cmd command.ParsedCommand) commandResp {
	attendees := cmd.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	rows := command.Preview(cmd)
	preview := make([]previewRowResp, len(rows))
	for i, row := range rows {
		preview[i] = previewRowResp{Label: row.Label, Value: row.Value}
	}

	return commandResp{
		Action:      string(cmd.Action),
		Title:       cmd.Title,
		Description: cmd.Description,
		Date:        cmd.Date,
		Attendees:   attendees,
		Location:    cmd.Location,
		DurationMin: int(cmd.Duration / time.Minute),
		Preview:     preview,
	}
}

type parseResp struct {
	Command commandResp `json:"command"`
}

func (h *handler) newParseResp(out command.ParseOutput) parseResp {
	return parseResp{Command: newCommandResp(out.Command)}
}

type eventResp struct {
	ID       string    `json:"id"`
	Link     string    `json:"link,omitempty"`
	Title    string    `json:"title"`
	Notes    string    `json:"notes,omitempty"`
	Location string    `json:"location,omitempty"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type addResp struct {
	Command commandResp `json:"command"`
	Event   eventResp   `json:"event"`
}

func (h *handler) newAddResp(out command.AddOutput) addResp {
	return addResp{
		Command: newCommandResp(out.Command),
		Event: eventResp{
			ID:       out.Event.ID,
			Link:     out.Event.Link,
			Title:    out.Event.Event.Title,
			Notes:    out.Event.Event.Notes,
			Location: out.Event.Event.Location,
			Start:    out.Event.Event.Start,
			End:      out.Event.Event.End,
		},
	}
}

type historyEntryResp struct {
	Text      string      `json:"text"`
	Command   commandResp `json:"command"`
	CreatedAt time.Time   `json:"created_at"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Count   int                `json:"count"`
}

func (h *handler) newHistoryResp(out command.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = historyEntryResp{
			Text:      e.Text,
			Command:   newCommandResp(e.Command),
			CreatedAt: e.CreatedAt,
		}
	}
	return historyResp{Entries: entries, Count: out.Count}
}

type examplesResp struct {
	Examples []string `json:"examples"`
}
