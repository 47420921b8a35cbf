package calendar

import "strings"

const (
	// AttendeesLabel prefixes the attendee line in event notes.
	AttendeesLabel = "참석자: "
	// AttendeesSeparator joins attendee labels.
	AttendeesSeparator = ", "
)

// BuildNotes appends the attendee line to the description. The newline is
// written even when the description is empty so notes match events saved by
// earlier clients.
func BuildNotes(description string, attendees []string) string {
	if len(attendees) == 0 {
		return description
	}
	return description + "\n" + AttendeesLabel + strings.Join(attendees, AttendeesSeparator)
}
