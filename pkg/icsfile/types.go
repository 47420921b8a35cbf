package icsfile

import "time"

const (
	// ProductID is written to the PRODID of every calendar this package creates.
	ProductID = "-//voice-calendar-assistant//ko"
	// UIDDomain is appended to generated event UIDs.
	UIDDomain = "voice-calendar-assistant"
)

// CreateEventRequest describes an event to append to the file.
type CreateEventRequest struct {
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

// Event is a VEVENT read from or written to the file.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}
