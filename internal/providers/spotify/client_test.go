package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer serves both the token exchange and the API from one mux.
func newAPIServer(t *testing.T, apiHandler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"test-token","expires_in":3600}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		apiHandler(w, r)
	})
	srv := httptest.NewServer(mux)
	c := New(srv.URL, srv.URL+"/token", "id", "secret", time.Second)
	return srv, c
}

func TestClient_SearchArtist(t *testing.T) {
	srv, c := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Beyonce", q.Get("q"))
		assert.Equal(t, "artist", q.Get("type"))
		assert.Equal(t, "1", q.Get("limit"))

		w.Write([]byte(`{"artists":{"items":[{
			"id":"a1","name":"Beyoncé",
			"images":[{"url":"big.jpg"},{"url":"mid.jpg"},{"url":"small.jpg"}],
			"followers":{"total":1234567},
			"popularity":92,
			"genres":["pop","r&b"],
			"external_urls":{"spotify":"https://open.spotify.com/artist/a1"}
		}]}}`))
	})
	defer srv.Close()

	artist, err := c.SearchArtist(context.Background(), "Beyonce")
	require.NoError(t, err)
	require.NotNil(t, artist)
	assert.Equal(t, "Beyoncé", artist.Name)
	assert.Equal(t, "big.jpg", artist.Image)
	assert.Equal(t, "small.jpg", artist.ImageSmall)
	assert.Equal(t, 1234567, artist.Followers)
	assert.Equal(t, "1,234,567", artist.FormattedFollowers)
	assert.Equal(t, 92, artist.Popularity)
}

func TestClient_SearchArtist_NoMatch(t *testing.T) {
	srv, c := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"artists":{"items":[]}}`))
	})
	defer srv.Close()

	artist, err := c.SearchArtist(context.Background(), "nobody at all")
	require.NoError(t, err)
	assert.Nil(t, artist)
}

func TestClient_ArtistAlbums_FiltersCompilations(t *testing.T) {
	srv, c := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artists/a1/albums", r.URL.Path)
		assert.Equal(t, "album,single", r.URL.Query().Get("include_groups"))

		w.Write([]byte(`{"items":[
			{"id":"al1","name":"Album One","album_type":"album","release_date":"2021-06-01","total_tracks":12,
			 "images":[{"url":"big.jpg"},{"url":"mid.jpg"}]},
			{"id":"al2","name":"Greatest Hits","album_type":"compilation","release_date":"2020-01-01"},
			{"id":"al3","name":"Single One","album_type":"single","release_date":"2023-02-10","total_tracks":1}
		]}`))
	})
	defer srv.Close()

	albums, err := c.ArtistAlbums(context.Background(), "a1", 8)
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Album", albums[0].Type)
	assert.Equal(t, "mid.jpg", albums[0].Image)
	assert.Equal(t, "2021", albums[0].ReleaseYear)
	assert.Equal(t, "Single", albums[1].Type)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "12,345,678", formatThousands(12345678))
}
