package history

import "errors"

var (
	ErrInvalidMaxEntries = errors.New("history: max entries must be positive")
	ErrInvalidMaxUsers   = errors.New("history: max users must not be negative")
)
