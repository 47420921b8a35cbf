package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFresh(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	// keep a stray config.yaml in the working directory out of the test
	t.Chdir(t.TempDir())
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadFresh(t)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "Asia/Seoul", cfg.Parser.Timezone)
	assert.Equal(t, CalendarProviderICS, cfg.Calendar.Provider)
	assert.Equal(t, "data/calendar.ics", cfg.Calendar.ICSPath)
	assert.Equal(t, 10, cfg.History.MaxEntries)
	assert.Equal(t, 24*time.Hour, cfg.History.TTL)
	assert.Equal(t, 60, cfg.RateLimit.PerMin)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("PARSER_TIMEZONE", "UTC")
	t.Setenv("CALENDAR_PROVIDER", "Google")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/secrets/credentials.json")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")

	cfg, err := loadFresh(t)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "UTC", cfg.Parser.Timezone)
	assert.Equal(t, CalendarProviderGoogle, cfg.Calendar.Provider)
	assert.Equal(t, "/secrets/credentials.json", cfg.GoogleCalendar.CredentialsPath)
	assert.Equal(t, "tg-token", cfg.Telegram.BotToken)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown provider", map[string]string{"CALENDAR_PROVIDER": "outlook"}},
		{"google without credentials", map[string]string{"CALENDAR_PROVIDER": "google"}},
		{"bad timezone", map[string]string{"PARSER_TIMEZONE": "Mars/Olympus"}},
		{"zero history", map[string]string{"HISTORY_MAX_ENTRIES": "-1"}},
		{"zero rate limit", map[string]string{"RATE_LIMIT_PER_MIN": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := loadFresh(t)
			assert.Error(t, err)
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("MY_TOKEN", "secret")

	assert.Equal(t, "", expandEnvVar(""))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Equal(t, "secret", expandEnvVar("${MY_TOKEN}"))
	assert.Equal(t, "${MISSING_TOKEN_X}", expandEnvVar("${MISSING_TOKEN_X}"))
}
