package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-calendar-assistant/config"
	_ "voice-calendar-assistant/docs" // Swagger docs
	"voice-calendar-assistant/internal/calendar"
	googleStore "voice-calendar-assistant/internal/calendar/google"
	icsStore "voice-calendar-assistant/internal/calendar/ics"
	"voice-calendar-assistant/internal/command"
	tgDelivery "voice-calendar-assistant/internal/command/delivery/telegram"
	"voice-calendar-assistant/internal/command/parser"
	"voice-calendar-assistant/internal/command/usecase"
	"voice-calendar-assistant/internal/history"
	"voice-calendar-assistant/internal/httpserver"
	"voice-calendar-assistant/internal/middleware"
	"voice-calendar-assistant/pkg/datemath"
	"voice-calendar-assistant/pkg/gcalendar"
	"voice-calendar-assistant/pkg/icsfile"
	"voice-calendar-assistant/pkg/log"
	"voice-calendar-assistant/pkg/telegram"
)

// @title       Voice Calendar Assistant API
// @description Korean natural-language scheduling commands parsed into calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser
	dateParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid parser timezone %q: %v", cfg.Parser.Timezone, err)
		return
	}
	commandParser := parser.New(dateParser)
	logger.Infof(ctx, "Parser timezone: %s", dateParser.Location())

	// 4. Calendar store
	store, err := newCalendarStore(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize calendar store: %v", err)
		return
	}
	logger.Infof(ctx, "Calendar provider: %s (access: %s)", cfg.Calendar.Provider, store.AccessStatus(ctx))

	// 5. Context log
	hist, err := history.New[command.HistoryEntry](history.Config{
		MaxEntries: cfg.History.MaxEntries,
		MaxUsers:   cfg.History.MaxUsers,
		TTL:        cfg.History.TTL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize history: %v", err)
		return
	}

	// 6. Command UseCase
	commandUC := usecase.New(logger, commandParser, store, hist, nil)

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, commandUC, telegramBot)
		go registerWebhook(ctx, logger, telegramBot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CommandUseCase:  commandUC,
		CalendarStore:   store,
		TelegramHandler: telegramHandler,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			MaxClients:      cfg.RateLimit.MaxClients,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newCalendarStore builds the store selected by calendar.provider.
// A Google store without a usable token still starts, reporting access as denied.
func newCalendarStore(ctx context.Context, logger log.Logger, cfg *config.Config) (calendar.Store, error) {
	switch cfg.Calendar.Provider {
	case config.CalendarProviderGoogle:
		var client googleStore.Client
		gc, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available: %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			client = gc
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
		return googleStore.New(logger, client, cfg.GoogleCalendar.CalendarID, cfg.Parser.Timezone), nil
	default:
		file, err := icsfile.New(cfg.Calendar.ICSPath)
		if err != nil {
			return nil, err
		}
		return icsStore.New(logger, file, cfg.Calendar.ReadOnly), nil
	}
}

// registerWebhook auto-detects ngrok when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookURL string) {
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, "http://ngrok:4040")
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
