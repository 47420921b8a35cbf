package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Calendar providers.
const (
	CalendarProviderICS    = "ics"
	CalendarProviderGoogle = "google"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Command parsing and calendar
	Parser         ParserConfig
	Calendar       CalendarConfig
	GoogleCalendar GoogleCalendarConfig
	History        HistoryConfig

	// Delivery
	Telegram  TelegramConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ParserConfig struct {
	Timezone string // IANA name, e.g. "Asia/Seoul"
}

type CalendarConfig struct {
	Provider string // ics | google
	ICSPath  string
	ReadOnly bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type HistoryConfig struct {
	MaxEntries int
	MaxUsers   int
	TTL        time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	PerMin     int
	MaxClients int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")

	// Calendar
	cfg.Calendar.Provider = strings.ToLower(strings.TrimSpace(viper.GetString("calendar.provider")))
	cfg.Calendar.ICSPath = viper.GetString("calendar.ics_path")
	cfg.Calendar.ReadOnly = viper.GetBool("calendar.read_only")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// History
	cfg.History.MaxEntries = viper.GetInt("history.max_entries")
	cfg.History.MaxUsers = viper.GetInt("history.max_users")
	cfg.History.TTL = viper.GetDuration("history.ttl")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "Asia/Seoul")

	viper.SetDefault("calendar.provider", CalendarProviderICS)
	viper.SetDefault("calendar.ics_path", "data/calendar.ics")
	viper.SetDefault("calendar.read_only", false)
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("history.max_entries", 10)
	viper.SetDefault("history.max_users", 1000)
	viper.SetDefault("history.ttl", "24h")

	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("rate_limit.max_clients", 1000)
}

func (cfg *Config) validate() error {
	switch cfg.Calendar.Provider {
	case CalendarProviderICS:
		if cfg.Calendar.ICSPath == "" {
			return fmt.Errorf("calendar.ics_path is required for the %q provider", CalendarProviderICS)
		}
	case CalendarProviderGoogle:
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return fmt.Errorf("google_calendar.credentials_path is required for the %q provider", CalendarProviderGoogle)
		}
	default:
		return fmt.Errorf("unknown calendar.provider %q (want %q or %q)",
			cfg.Calendar.Provider, CalendarProviderICS, CalendarProviderGoogle)
	}

	if cfg.Parser.Timezone == "" {
		return fmt.Errorf("parser.timezone is required")
	}
	if _, err := time.LoadLocation(cfg.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone: %w", err)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be positive")
	}
	if cfg.History.MaxUsers <= 0 {
		return fmt.Errorf("history.max_users must be positive")
	}
	if cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
