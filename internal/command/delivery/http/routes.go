package http

import (
	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	commands := rg.Group("/commands", mw.RateLimit(), mw.Scope())
	{
		commands.POST("/parse", h.Parse)
		commands.POST("/calendar", h.AddToCalendar)
		commands.GET("/history", h.History)
		commands.DELETE("/history", h.ClearHistory)
		commands.GET("/examples", h.Examples)
	}
}
