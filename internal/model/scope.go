package model

// Scope identifies the caller a request is executed for.
type Scope struct {
	UserID   string
	Username string
}

// IsZero reports whether the scope carries no user.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}
