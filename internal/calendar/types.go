package calendar

import "time"

// AccessStatus is the authorization state of a calendar store.
type AccessStatus int

const (
	// AccessNotDetermined means the user has not decided yet; RequestAccess must prompt.
	AccessNotDetermined AccessStatus = iota
	// AccessGranted means writes are allowed.
	AccessGranted
	// AccessDenied covers both denied and restricted states.
	AccessDenied
)

func (s AccessStatus) String() string {
	switch s {
	case AccessGranted:
		return "granted"
	case AccessDenied:
		return "denied"
	default:
		return "not_determined"
	}
}

// Draft is what the caller wants written. Start is nil when no date was recognised.
type Draft struct {
	Title       string
	Description string
	Attendees   []string
	Location    string
	Start       *time.Time
	Duration    time.Duration
}

// Event is the record handed to a Store.
type Event struct {
	Title    string
	Notes    string
	Location string
	Start    time.Time
	End      time.Time
}

// SavedEvent is what a Store reports after a successful write.
type SavedEvent struct {
	ID    string
	Link  string // provider deep link, may be empty
	Event Event
}
