package config_test

import (
	"testing"
	"time"

	"github.com/smartmail/go-assistant-client/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()

	require.Equal(t, "http://localhost:8000", cfg.GetBaseURL())
	require.Equal(t, 15*time.Second, cfg.GetHTTPTimeout())
	require.Equal(t, "info", cfg.GetLogLevel())
	require.Equal(t, "Mail Assist", cfg.GetAppName())
	require.NotEmpty(t, cfg.GetDataFolder())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAILASSIST_BASE_URL", "https://assistant.example.com")
	t.Setenv("MAILASSIST_DATA_FOLDER", "/tmp/mailassist-test")
	t.Setenv("MAILASSIST_TIMEOUT", "2s")
	t.Setenv("MAILASSIST_LOG_LEVEL", "debug")

	cfg := config.New()

	require.Equal(t, "https://assistant.example.com", cfg.GetBaseURL())
	require.Equal(t, "/tmp/mailassist-test", cfg.GetDataFolder())
	require.Equal(t, 2*time.Second, cfg.GetHTTPTimeout())
	require.Equal(t, "debug", cfg.GetLogLevel())
}

func TestBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("MAILASSIST_TIMEOUT", "soon")
	require.Equal(t, 15*time.Second, config.New().GetHTTPTimeout())
}
