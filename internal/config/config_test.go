package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cleanup := func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("TICKETMASTER_API_KEY")
		os.Unsetenv("SPOTIFY_CLIENT_ID")
		os.Unsetenv("SPOTIFY_CLIENT_SECRET")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("PROVIDER_TIMEOUT")
	}

	t.Run("should_return_error_if_ticketmaster_key_is_missing", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Equal(t, "missing TICKETMASTER_API_KEY", err.Error())
	})

	t.Run("should_return_error_if_database_url_is_missing", func(t *testing.T) {
		cleanup()
		os.Setenv("TICKETMASTER_API_KEY", "tm-key")
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Equal(t, "missing DATABASE_URL", err.Error())
	})

	t.Run("should_load_successfully_with_valid_env", func(t *testing.T) {
		cleanup()
		os.Setenv("TICKETMASTER_API_KEY", "tm-key")
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "dev", cfg.AppEnv)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTLDetails)
		assert.Equal(t, "https://app.ticketmaster.com/discovery/v2", cfg.TicketmasterURL)
		assert.False(t, cfg.SpotifyConfigured())
	})

	t.Run("spotify_configured_needs_both_credentials", func(t *testing.T) {
		cleanup()
		os.Setenv("TICKETMASTER_API_KEY", "tm-key")
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		os.Setenv("SPOTIFY_CLIENT_ID", "id")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.False(t, cfg.SpotifyConfigured())

		os.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
		cfg, err = Load()
		assert.NoError(t, err)
		assert.True(t, cfg.SpotifyConfigured())
	})
}

func TestGetDuration(t *testing.T) {
	t.Run("should_fall_back_on_garbage", func(t *testing.T) {
		os.Setenv("TEST_DUR", "not-a-duration")
		defer os.Unsetenv("TEST_DUR")
		assert.Equal(t, 3*time.Second, getDuration("TEST_DUR", 3*time.Second))
	})

	t.Run("should_parse_valid_duration", func(t *testing.T) {
		os.Setenv("TEST_DUR", "250ms")
		defer os.Unsetenv("TEST_DUR")
		assert.Equal(t, 250*time.Millisecond, getDuration("TEST_DUR", time.Second))
	})
}
