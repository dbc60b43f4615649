package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventhub/internal/application/search"
	"eventhub/internal/domain"
	"eventhub/internal/transport/http/response"
)

type EventsHandler struct {
	svc *search.Service
}

func NewEventsHandler(svc *search.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// Get handles GET /api/events/{event_id}.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if id == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"event_id": "is required",
		}))
		return
	}

	ev, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, ev)
}
