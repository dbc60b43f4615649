package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/application/favorites"
	"eventhub/internal/application/search"
	"eventhub/internal/config"
	"eventhub/internal/infrastructure/caching/redis"
	"eventhub/internal/infrastructure/db/postgres"
	"eventhub/internal/logger"
	"eventhub/internal/providers/geocode"
	"eventhub/internal/providers/ipinfo"
	"eventhub/internal/providers/spotify"
	"eventhub/internal/providers/ticketmaster"
	"eventhub/internal/transport/http/handlers"
	"eventhub/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service.
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB
	Cache  *redis.Client
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	// The favorites store is optional at runtime: a dead database degrades
	// favorites to 503 instead of taking the search endpoints down with it.
	var favRepo *postgres.Repo
	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Warn().Err(err).Msg("db unreachable: favorites will be unavailable")
		} else if err := postgres.EnsureSchema(ctx, db); err != nil {
			zlog.Warn().Err(err).Msg("schema setup failed: favorites will be unavailable")
		} else {
			favRepo = postgres.New(db)
		}
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		c, err := redis.New(cfg.RedisURL)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unreachable: caching disabled")
		} else {
			cache = c
			defer cache.Close()
		}
	}

	app := NewApp(cfg, db, favRepo, cache)

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, db *sql.DB, favRepo *postgres.Repo, cache *redis.Client) *App {
	// 1) Providers
	tm := ticketmaster.New(cfg.TicketmasterURL, cfg.TicketmasterKey, cfg.ProviderTimeout)
	sp := spotify.New(cfg.SpotifyURL, cfg.SpotifyTokenURL,
		cfg.SpotifyClientID, cfg.SpotifyClientSecret, cfg.ProviderTimeout)
	ip := ipinfo.New(cfg.IPInfoURL, cfg.IPInfoToken, cfg.ProviderTimeout)
	gc := geocode.New(cfg.GeocodingURL, cfg.GeocodingKey, cfg.ProviderTimeout)

	// 2) Application
	searchSvc := search.New(tm, cacheOrNil(cache), cfg.CacheTTLDetails)

	// Typed-nil *postgres.Repo must not reach the Repo interface.
	favSvc := favorites.New(nil, sysClock{})
	if favRepo != nil {
		favSvc = favorites.New(favRepo, sysClock{})
	}

	// 3) Transport
	h := router.Handlers{
		Search:    handlers.NewSearchHandler(searchSvc),
		Events:    handlers.NewEventsHandler(searchSvc),
		Favorites: handlers.NewFavoritesHandler(favSvc),
		Artists:   handlers.NewArtistsHandler(sp),
		Location:  handlers.NewLocationHandler(ip, gc),
		Health: handlers.NewHealthHandler(db, cache, handlers.ProviderFlags{
			Ticketmaster: cfg.TicketmasterKey != "",
			Spotify:      cfg.SpotifyConfigured(),
			Geocoding:    cfg.GeocodingKey != "",
		}),
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{Config: cfg, Server: srv, DB: db, Cache: cache}
}

// cacheOrNil keeps a typed-nil *redis.Client out of the search.Cache
// interface.
func cacheOrNil(c *redis.Client) search.Cache {
	if c == nil {
		return nil
	}
	return c
}
