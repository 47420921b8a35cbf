package history

import "time"

const (
	// DefaultMaxEntries is how many commands are kept per user.
	DefaultMaxEntries = 10
	// DefaultMaxUsers bounds the number of users tracked at once.
	DefaultMaxUsers = 1000
	// DefaultTTL drops a user's log after this much inactivity.
	DefaultTTL = 24 * time.Hour
)

// Config controls the size and lifetime of the context log.
type Config struct {
	MaxEntries int
	MaxUsers   int
	TTL        time.Duration
}
