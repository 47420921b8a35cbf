package history

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Log keeps the most recent entries per user, oldest first.
// When a user's log is full the oldest entry is evicted.
type Log[T any] struct {
	mu         sync.Mutex
	users      *expirable.LRU[string, []T]
	maxEntries int
}

// New creates an in-memory context log.
// Zero values in cfg fall back to the package defaults.
func New[T any](cfg Config) (*Log[T], error) {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.MaxUsers == 0 {
		cfg.MaxUsers = DefaultMaxUsers
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxEntries < 0 {
		return nil, ErrInvalidMaxEntries
	}
	if cfg.MaxUsers < 0 {
		return nil, ErrInvalidMaxUsers
	}

	return &Log[T]{
		users:      expirable.NewLRU[string, []T](cfg.MaxUsers, nil, cfg.TTL),
		maxEntries: cfg.MaxEntries,
	}, nil
}

// Append records entry for userID.
func (l *Log[T]) Append(userID string, entry T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, _ := l.users.Get(userID)

	next := make([]T, 0, l.maxEntries)
	if overflow := len(entries) + 1 - l.maxEntries; overflow > 0 {
		entries = entries[overflow:]
	}
	next = append(next, entries...)
	next = append(next, entry)

	l.users.Add(userID, next)
}

// Recent returns a copy of the user's entries, oldest first.
func (l *Log[T]) Recent(userID string) []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, ok := l.users.Get(userID)
	if !ok {
		return []T{}
	}
	out := make([]T, len(entries))
	copy(out, entries)
	return out
}

// Clear drops every entry recorded for userID.
func (l *Log[T]) Clear(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.users.Remove(userID)
}

// Users returns how many users currently have a log.
func (l *Log[T]) Users() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.users.Len()
}
