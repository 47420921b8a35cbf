package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	commandHTTP "voice-calendar-assistant/internal/command/delivery/http"
	"voice-calendar-assistant/internal/middleware"
)

// setupCommandDomain registers the command routes under /api/v1/commands.
// The use case is built in main because the Telegram delivery shares it.
func (srv *HTTPServer) setupCommandDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := commandHTTP.New(srv.l, srv.commandUC)
	commandHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Command domain registered")
	return nil
}
