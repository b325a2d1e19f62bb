package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/clothes_test")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 120*time.Minute, cfg.TokenTTL)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.Equal(t, int32(2), cfg.DBMinConns)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, 100, cfg.RateLimitRPM)
	require.Equal(t, 10, cfg.AuthRateLimitRPM)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "45m")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 45*time.Minute, cfg.TokenTTL)
	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			ServerPort:     "8080",
			DatabaseURL:    "postgres://localhost/db",
			JWTSecret:      "secret",
			TokenTTL:       time.Hour,
			RequestTimeout: 30 * time.Second,
			DBMaxConns:     10,
			DBMinConns:     2,
		}
	}

	require.NoError(t, base().Validate())

	t.Run("missing secret", func(t *testing.T) {
		cfg := base()
		cfg.JWTSecret = " "
		require.Error(t, cfg.Validate())
	})

	t.Run("missing database URL", func(t *testing.T) {
		cfg := base()
		cfg.DatabaseURL = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive TTL", func(t *testing.T) {
		cfg := base()
		cfg.TokenTTL = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("inverted pool bounds", func(t *testing.T) {
		cfg := base()
		cfg.DBMinConns = 20
		require.Error(t, cfg.Validate())
	})
}
