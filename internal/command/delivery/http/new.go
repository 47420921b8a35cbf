package http

import (
	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/command"
	"voice-calendar-assistant/pkg/log"
)

// Handler is the public interface for the command HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	AddToCalendar(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	Examples(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for the command domain.
func New(l log.Logger, uc command.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
