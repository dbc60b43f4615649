package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr    string
	DatabaseURL string

	// Provider credentials
	TicketmasterKey     string
	SpotifyClientID     string
	SpotifyClientSecret string
	GeocodingKey        string
	IPInfoToken         string

	// Provider base URLs, overridable for tests
	TicketmasterURL string
	SpotifyURL      string
	SpotifyTokenURL string
	GeocodingURL    string
	IPInfoURL       string

	// Redis & caching
	RedisURL        string
	CacheTTLDetails time.Duration

	ProviderTimeout time.Duration

	// Rate limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")

	cfg.TicketmasterKey = getEnv("TICKETMASTER_API_KEY", "")
	cfg.SpotifyClientID = getEnv("SPOTIFY_CLIENT_ID", "")
	cfg.SpotifyClientSecret = getEnv("SPOTIFY_CLIENT_SECRET", "")
	cfg.GeocodingKey = getEnv("GOOGLE_GEOCODING_API_KEY", "")
	cfg.IPInfoToken = getEnv("IPINFO_TOKEN", "")

	cfg.TicketmasterURL = getEnv("TICKETMASTER_URL", "https://app.ticketmaster.com/discovery/v2")
	cfg.SpotifyURL = getEnv("SPOTIFY_URL", "https://api.spotify.com/v1")
	cfg.SpotifyTokenURL = getEnv("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token")
	cfg.GeocodingURL = getEnv("GOOGLE_GEOCODING_URL", "https://maps.googleapis.com/maps/api/geocode/json")
	cfg.IPInfoURL = getEnv("IPINFO_URL", "https://ipinfo.io/json")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTLDetails = getDuration("CACHE_TTL_DETAILS", 5*time.Minute)

	cfg.ProviderTimeout = getDuration("PROVIDER_TIMEOUT", 10*time.Second)

	// Rate limiting defaults: 100 reqs / 1 min
	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	// validation
	if cfg.TicketmasterKey == "" {
		return nil, fmt.Errorf("missing TICKETMASTER_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing DATABASE_URL")
	}

	return cfg, nil
}

// SpotifyConfigured reports whether the artist endpoints can authenticate.
func (c *Config) SpotifyConfigured() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
