package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS", "DEFAULT_CURRENCY", "DEFAULT_LOCALE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.True(t, cfg.IsDev())
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "./dev.db", cfg.DBPath)
	require.Equal(t, "€", cfg.DefaultCurrency)
	require.Equal(t, "it", cfg.DefaultLocale)
	require.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/var/lib/budgez/budgez.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.IsDev())
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "/var/lib/budgez/budgez.db", cfg.DBPath)
	require.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSAllowedOrigins)
}

func TestHTTPAddrAcceptsLeadingColon(t *testing.T) {
	cfg := Config{Port: ":3000"}
	require.Equal(t, ":3000", cfg.HTTPAddr())
}
