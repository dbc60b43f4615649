package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"eventhub/internal/domain"
	"eventhub/internal/providers/spotify"
	"eventhub/internal/transport/http/response"
)

const albumLimit = 8

type ArtistsHandler struct {
	spotify *spotify.Client
}

func NewArtistsHandler(client *spotify.Client) *ArtistsHandler {
	return &ArtistsHandler{spotify: client}
}

// Search handles GET /api/artist/{artist}, where the path segment is the
// artist name. A name Spotify cannot match is not an error: the artist field
// is null.
func (h *ArtistsHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "artist"))
	if name == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"artist": "is required",
		}))
		return
	}

	artist, err := h.spotify.SearchArtist(r.Context(), name)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"artist": artist})
}

// Albums handles GET /api/artist/{artist}/albums, where the path segment is
// the Spotify artist id.
func (h *ArtistsHandler) Albums(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "artist")
	if id == "" {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"artist": "is required",
		}))
		return
	}

	albums, err := h.spotify.ArtistAlbums(r.Context(), id, albumLimit)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"albums": albums})
}
