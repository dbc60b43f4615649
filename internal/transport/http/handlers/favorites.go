package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventhub/internal/application/favorites"
	"eventhub/internal/domain"
	"eventhub/internal/transport/http/response"
)

type FavoritesHandler struct {
	svc *favorites.Service
}

func NewFavoritesHandler(svc *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{svc: svc}
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"favorites": favs,
		"total":     len(favs),
	})
}

type addFavoriteReq struct {
	Event domain.Event `json:"event"`
}

// Add handles POST /api/favorites/{event_id}. The body event must carry the
// same id as the path.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")

	var req addFavoriteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON",
		}))
		return
	}
	if req.Event.ID != id {
		response.Err(w, r, domain.ErrValidationMeta("invalid json body", map[string]string{
			"event.id": "must match the path event id",
		}))
		return
	}

	status, err := h.svc.Add(r.Context(), req.Event)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	code := http.StatusCreated
	if status == favorites.StatusAlreadyExists {
		code = http.StatusOK
	}
	response.JSON(w, code, map[string]string{
		"status":  status,
		"eventId": id,
	})
}

// Remove handles DELETE /api/favorites/{event_id}.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")

	status, err := h.svc.Remove(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"eventId": id,
	})
}
