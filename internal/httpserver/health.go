package httpserver

import (
	"voice-calendar-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "음성 캘린더 비서 API"
	HealthVersion = "1.0.0"
	ServiceName   = "voice-calendar-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the server as ready along with the calendar store's access state.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic and whether the calendar store is writable
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	calendarAccess := "unconfigured"
	if srv.calendarStore != nil {
		calendarAccess = srv.calendarStore.AccessStatus(c.Request.Context()).String()
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"calendar": calendarAccess,
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
