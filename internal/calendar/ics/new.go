package ics

import (
	"voice-calendar-assistant/pkg/icsfile"
	"voice-calendar-assistant/pkg/log"
)

// Store writes events to a local iCalendar file.
type Store struct {
	l        log.Logger
	file     *icsfile.Store
	readOnly bool
}

// New creates a file-backed calendar store.
// A read-only store reports access as denied and never writes.
func New(l log.Logger, file *icsfile.Store, readOnly bool) *Store {
	return &Store{
		l:        l,
		file:     file,
		readOnly: readOnly,
	}
}
