package gcalendar

import "time"

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// DefaultTokenPath is where scripts/gcal-auth writes the OAuth token.
const DefaultTokenPath = "token.json"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Seoul"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
