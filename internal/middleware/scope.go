package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/model"
)

const (
	// UserIDHeader identifies the caller of the REST API.
	UserIDHeader = "X-User-ID"
	// UserNameHeader optionally carries a display name.
	UserNameHeader = "X-User-Name"

	scopeKey = "scope"
)

// Scope builds a model.Scope from the caller headers and stores it on the context.
// Requests without X-User-ID get an empty scope.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(scopeKey, model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(UserIDHeader)),
			Username: strings.TrimSpace(c.GetHeader(UserNameHeader)),
		})
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or an empty scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
