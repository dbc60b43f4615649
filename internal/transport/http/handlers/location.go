package handlers

import (
	"net/http"
	"strings"

	"eventhub/internal/domain"
	"eventhub/internal/providers/geocode"
	"eventhub/internal/providers/ipinfo"
	"eventhub/internal/transport/http/response"
)

type LocationHandler struct {
	ipinfo  *ipinfo.Client
	geocode *geocode.Client
}

func NewLocationHandler(ip *ipinfo.Client, gc *geocode.Client) *LocationHandler {
	return &LocationHandler{ipinfo: ip, geocode: gc}
}

// AutoDetect handles GET /api/location/auto-detect. It always answers 200:
// detection failures degrade to the fallback location.
func (h *LocationHandler) AutoDetect(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.ipinfo.Detect(r.Context()))
}

// Geocode handles GET /api/location/geocode?address=...
func (h *LocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid query param", map[string]string{
			"address": "is required",
		}))
		return
	}

	res, err := h.geocode.Geocode(r.Context(), address)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, res)
}
