package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/calendar"
	"voice-calendar-assistant/internal/command"
	tgDelivery "voice-calendar-assistant/internal/command/delivery/telegram"
	"voice-calendar-assistant/internal/middleware"
	"voice-calendar-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Command domain
	commandUC       command.UseCase
	calendarStore   calendar.Store
	middlewareCfg   middleware.Config
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Command domain
	CommandUseCase  command.UseCase
	CalendarStore   calendar.Store // reported by /ready
	Middleware      middleware.Config
	TelegramHandler tgDelivery.Handler // optional
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		commandUC:       cfg.CommandUseCase,
		calendarStore:   cfg.CalendarStore,
		middlewareCfg:   cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.commandUC == nil {
		return errors.New("command use case is required")
	}
	return nil
}
