// Package client is a typed consumer of the eventhub HTTP API, including the
// favorites synchronization engine the frontend drives.
package client

import (
	"bytes"
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

// APIError is the decoded error envelope of a non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Meta       map[string]string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

type errorEnvelope struct {
	Error struct {
		Code      string            `json:"code"`
		Message   string            `json:"message"`
		Meta      map[string]string `json:"meta"`
		RequestID string            `json:"request_id"`
	} `json:"error"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// SearchParams mirrors the /api/search query string.
type SearchParams struct {
	Keyword   string
	Category  string
	Distance  int
	Latitude  float64
	Longitude float64
}

type SearchResult struct {
	Events    []domain.Event `json:"events"`
	Total     int            `json:"total"`
	Available int            `json:"available"`
	Message   string         `json:"message"`
}

func (c *Client) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	q := url.Values{}
	q.Set("keyword", p.Keyword)
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Distance > 0 {
		q.Set("distance", strconv.Itoa(p.Distance))
	}
	q.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', -1, 64))

	var out SearchResult
	if err := c.get(ctx, "/api/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Autocomplete(ctx context.Context, keyword string) ([]string, error) {
	q := url.Values{}
	q.Set("keyword", keyword)

	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.get(ctx, "/api/search/autocomplete?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (c *Client) EventDetails(ctx context.Context, id string) (*domain.Event, error) {
	var out domain.Event
	if err := c.get(ctx, "/api/events/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	var out struct {
		Favorites []domain.Favorite `json:"favorites"`
		Total     int               `json:"total"`
	}
	if err := c.get(ctx, "/api/favorites", &out); err != nil {
		return nil, err
	}
	return out.Favorites, nil
}

// AddFavorite persists the event and returns the server status
// ("added" or "already_exists").
func (c *Client) AddFavorite(ctx context.Context, ev domain.Event) (string, error) {
	body, err := json.Marshal(map[string]domain.Event{"event": ev})
	if err != nil {
		return "", err
	}

	var out struct {
		Status string `json:"status"`
	}
	err = c.do(ctx, http.MethodPost, "/api/favorites/"+url.PathEscape(ev.ID), body, &out)
	if err != nil {
		return "", err
	}
	return out.Status, nil
}

// RemoveFavorite returns the server status ("removed" or "not_found").
func (c *Client) RemoveFavorite(ctx context.Context, id string) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	err := c.do(ctx, http.MethodDelete, "/api/favorites/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return "", err
	}
	return out.Status, nil
}

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

// Artist looks an artist up by name; nil means Spotify had no match.
func (c *Client) Artist(ctx context.Context, name string) (*Artist, error) {
	var out struct {
		Artist *Artist `json:"artist"`
	}
	if err := c.get(ctx, "/api/artist/"+url.PathEscape(name), &out); err != nil {
		return nil, err
	}
	return out.Artist, nil
}

func (c *Client) ArtistAlbums(ctx context.Context, artistID string) ([]Album, error) {
	var out struct {
		Albums []Album `json:"albums"`
	}
	if err := c.get(ctx, "/api/artist/"+url.PathEscape(artistID)+"/albums", &out); err != nil {
		return nil, err
	}
	return out.Albums, nil
}

// Location is a resolved coordinate, auto-detected or geocoded. Fallback is
// only ever set on auto-detect responses.
type Location struct {
	City             string  `json:"city"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress"`
	Fallback         bool    `json:"fallback"`
	Message          string  `json:"message"`
}

func (c *Client) AutoDetect(ctx context.Context) (*Location, error) {
	var out Location
	if err := c.get(ctx, "/api/location/auto-detect", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Geocode(ctx context.Context, address string) (*Location, error) {
	q := url.Values{}
	q.Set("address", address)

	var out Location
	if err := c.get(ctx, "/api/location/geocode?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, dest any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Error.Code == "" {
			return &APIError{
				StatusCode: resp.StatusCode,
				Code:       "unknown_error",
				Message:    http.StatusText(resp.StatusCode),
			}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.Error.Code,
			Message:    env.Error.Message,
			Meta:       env.Error.Meta,
			RequestID:  env.Error.RequestID,
		}
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
