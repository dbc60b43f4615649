package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eventhub/internal/application/search"
	"eventhub/internal/domain"
	"eventhub/internal/transport/http/response"
)

const suggestionCap = 10

type SearchHandler struct {
	svc *search.Service
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	keyword := strings.TrimSpace(q.Get("keyword"))
	if keyword == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"keyword": "is required",
		}))
		return
	}

	category := q.Get("category")
	if category == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"category": "is required",
		}))
		return
	}
	if !domain.ValidCategory(category) {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"category": "must be one of: " + strings.Join(domain.Categories, ", "),
		}))
		return
	}

	dist := q.Get("distance")
	if dist == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"distance": "is required",
		}))
		return
	}
	n, err := strconv.ParseFloat(dist, 64)
	if err != nil || n < 1 {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"distance": "must be a number >= 1",
		}))
		return
	}
	radius := int(n)

	lat, lng := q.Get("latitude"), q.Get("longitude")
	for _, p := range []struct{ name, val string }{{"latitude", lat}, {"longitude", lng}} {
		if p.val == "" {
			response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
				p.name: "is required",
			}))
			return
		}
		if _, err := strconv.ParseFloat(p.val, 64); err != nil {
			response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
				p.name: "must be numeric",
			}))
			return
		}
	}

	res, err := h.svc.Search(r.Context(), search.Query{
		Keyword:  keyword,
		Category: category,
		Radius:   radius,
		GeoPoint: lat + "," + lng,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, res)
}

// Autocomplete handles GET /api/search/autocomplete.
func (h *SearchHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))

	suggestions, err := h.svc.Suggest(r.Context(), keyword, suggestionCap)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}
