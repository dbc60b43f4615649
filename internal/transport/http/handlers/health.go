package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"eventhub/internal/infrastructure/caching/redis"
	"eventhub/internal/transport/http/response"
)

// ProviderFlags reports which upstream credentials are configured.
type ProviderFlags struct {
	Ticketmaster bool `json:"ticketmaster"`
	Spotify      bool `json:"spotify"`
	Geocoding    bool `json:"geocoding"`
}

type HealthHandler struct {
	db    *sql.DB
	cache *redis.Client
	apis  ProviderFlags
}

func NewHealthHandler(db *sql.DB, cache *redis.Client, apis ProviderFlags) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, apis: apis}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbConnected := h.db != nil && h.db.PingContext(ctx) == nil
	redisConnected := h.cache != nil && h.cache.Ping(ctx) == nil

	response.JSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"db":     dbConnected,
		"redis":  redisConnected,
		"apis":   h.apis,
	})
}
