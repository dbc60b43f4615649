package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eventhub/internal/domain"
)

const maxDiagnostic = 200

// Artist is the reshaped Spotify artist summary the frontend consumes.
type Artist struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Image              string   `json:"image"`
	ImageSmall         string   `json:"imageSmall"`
	Followers          int      `json:"followers"`
	FormattedFollowers string   `json:"formattedFollowers"`
	Popularity         int      `json:"popularity"`
	Genres             []string `json:"genres"`
	SpotifyURL         string   `json:"spotifyUrl"`
}

type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	ReleaseDate string `json:"releaseDate"`
	ReleaseYear string `json:"releaseYear"`
	Tracks      int    `json:"tracks"`
	Type        string `json:"type"`
	SpotifyURL  string `json:"spotifyUrl"`
}

type Client struct {
	baseURL string
	tokens  *tokenSource
	http    *http.Client
}

func New(baseURL, tokenURL, clientID, clientSecret string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  newTokenSource(tokenURL, clientID, clientSecret, timeout),
		http:    &http.Client{Timeout: timeout},
	}
}

// SearchArtist returns the best match for a name, or nil when Spotify has no
// match (not an error).
func (c *Client) SearchArtist(ctx context.Context, name string) (*Artist, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("type", "artist")
	q.Set("limit", "1")

	var out struct {
		Artists *struct {
			Items []rawArtist `json:"items"`
		} `json:"artists"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	if out.Artists == nil || len(out.Artists.Items) == 0 {
		return nil, nil
	}
	return reshapeArtist(out.Artists.Items[0]), nil
}

// ArtistAlbums returns up to limit albums and singles, compilations filtered.
func (c *Client) ArtistAlbums(ctx context.Context, artistID string, limit int) ([]Album, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("include_groups", "album,single")
	q.Set("market", "US")

	var out struct {
		Items []rawAlbum `json:"items"`
	}
	u := c.baseURL + "/artists/" + url.PathEscape(artistID) + "/albums?" + q.Encode()
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}

	albums := make([]Album, 0, limit)
	for _, a := range out.Items {
		if a.AlbumType == "compilation" {
			continue
		}
		albums = append(albums, reshapeAlbum(a))
		if len(albums) == limit {
			break
		}
	}
	return albums, nil
}

type rawArtist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Followers *struct {
		Total int `json:"total"`
	} `json:"followers"`
	Popularity   int      `json:"popularity"`
	Genres       []string `json:"genres"`
	ExternalURLs *struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type rawAlbum struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	ReleaseDate  string `json:"release_date"`
	TotalTracks  int    `json:"total_tracks"`
	AlbumType    string `json:"album_type"`
	ExternalURLs *struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func reshapeArtist(a rawArtist) *Artist {
	out := &Artist{
		ID:         a.ID,
		Name:       a.Name,
		Popularity: a.Popularity,
		Genres:     a.Genres,
	}
	if len(a.Images) > 0 {
		out.Image = a.Images[0].URL
		out.ImageSmall = a.Images[len(a.Images)-1].URL
	}
	if a.Followers != nil {
		out.Followers = a.Followers.Total
	}
	out.FormattedFollowers = formatThousands(out.Followers)
	if a.ExternalURLs != nil {
		out.SpotifyURL = a.ExternalURLs.Spotify
	}
	return out
}

func reshapeAlbum(a rawAlbum) Album {
	out := Album{
		ID:          a.ID,
		Name:        a.Name,
		ReleaseDate: a.ReleaseDate,
		Tracks:      a.TotalTracks,
		Type:        "Single",
	}
	if a.AlbumType == "album" {
		out.Type = "Album"
	}
	if len(a.ReleaseDate) >= 4 {
		out.ReleaseYear = a.ReleaseDate[:4]
	}
	if len(a.Images) > 1 {
		out.Image = a.Images[1].URL
	} else if len(a.Images) == 1 {
		out.Image = a.Images[0].URL
	}
	if a.ExternalURLs != nil {
		out.SpotifyURL = a.ExternalURLs.Spotify
	}
	return out
}

// formatThousands renders 1234567 as "1,234,567".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, c)
	}
	return string(b)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ErrUpstream("spotify unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound("artist not found")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnostic))
		return domain.ErrUpstreamMeta(
			fmt.Sprintf("spotify responded %d", resp.StatusCode),
			map[string]string{"status": strconv.Itoa(resp.StatusCode), "body": string(body)},
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.ErrUpstream("spotify returned malformed JSON")
	}
	return nil
}
