package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventhub/internal/config"
	"eventhub/internal/transport/http/handlers"
	"eventhub/internal/transport/http/middleware"
)

type Handlers struct {
	Search    *handlers.SearchHandler
	Events    *handlers.EventsHandler
	Favorites *handlers.FavoritesHandler
	Artists   *handlers.ArtistsHandler
	Location  *handlers.LocationHandler
	Health    *handlers.HealthHandler
}

func New(h Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", h.Health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Healthz)

		r.Get("/search", h.Search.Search)
		r.Get("/search/autocomplete", h.Search.Autocomplete)
		r.Get("/events/{event_id}", h.Events.Get)

		r.Get("/favorites", h.Favorites.List)
		r.Post("/favorites/{event_id}", h.Favorites.Add)
		r.Delete("/favorites/{event_id}", h.Favorites.Remove)

		r.Get("/artist/{artist}", h.Artists.Search)
		r.Get("/artist/{artist}/albums", h.Artists.Albums)

		r.Get("/location/auto-detect", h.Location.AutoDetect)
		r.Get("/location/geocode", h.Location.Geocode)
	})

	return r
}
