package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-calendar-assistant/internal/middleware"
	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", handlers...)
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 10/min allows a burst of one
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 10})
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	alice := map[string]string{middleware.UserIDHeader: "alice"}
	bob := map[string]string{middleware.UserIDHeader: "bob"}

	assert.Equal(t, http.StatusOK, do(r, alice).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, alice).Code)
	assert.Equal(t, http.StatusOK, do(r, bob).Code, "callers have separate buckets")
}

func TestRateLimitByIP(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 10})
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"}
	second := map[string]string{"X-Real-IP": "10.0.0.2"}

	assert.Equal(t, http.StatusOK, do(r, first).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, first).Code)
	assert.Equal(t, http.StatusOK, do(r, second).Code)
}

func TestScope(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})

	var got model.Scope
	r := newEngine(mw.Scope(), func(c *gin.Context) {
		got = middleware.GetScope(c)
		c.Status(http.StatusOK)
	})

	do(r, map[string]string{middleware.UserIDHeader: " u-1 ", middleware.UserNameHeader: "민수"})
	assert.Equal(t, model.Scope{UserID: "u-1", Username: "민수"}, got)

	do(r, nil)
	assert.True(t, got.IsZero())
}

func TestGetScopeWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.True(t, middleware.GetScope(c).IsZero())
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})

	var fromCtx string
	r := newEngine(mw.RequestID(), func(c *gin.Context) {
		fromCtx, _ = c.Request.Context().Value(log.RequestIDKey).(string)
		c.Status(http.StatusOK)
	})

	w := do(r, nil)
	id := w.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, fromCtx)

	w = do(r, map[string]string{middleware.RequestIDHeader: "fixed-id"})
	assert.Equal(t, "fixed-id", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "fixed-id", fromCtx)
}
