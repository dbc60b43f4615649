package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

// maxDiagnostic bounds how much of an upstream error body reaches a response.
const maxDiagnostic = 200

// Client calls the Ticketmaster discovery API. One call per request, no
// retries: a failed upstream call surfaces immediately.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type SearchParams struct {
	Keyword   string
	Radius    int
	GeoPoint  string // "lat,long"
	SegmentID string // empty = no filter
}

// SearchEvents returns the raw event list, upstream-sorted by date ascending
// and capped at 20 by the size parameter. Normalization happens in the
// application layer.
func (c *Client) SearchEvents(ctx context.Context, p SearchParams) ([]RawEvent, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("keyword", p.Keyword)
	q.Set("radius", strconv.Itoa(p.Radius))
	q.Set("unit", "miles")
	q.Set("geoPoint", p.GeoPoint)
	q.Set("size", "20")
	q.Set("sort", "date,asc")
	q.Set("countryCode", "US")
	if p.SegmentID != "" {
		q.Set("segmentId", p.SegmentID)
	}

	var out searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/events.json?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	if out.Embedded == nil {
		return nil, nil
	}
	return out.Embedded.Events, nil
}

// Suggest returns attraction names for an autocomplete keyword, blanks
// dropped, at most limit entries.
func (c *Client) Suggest(ctx context.Context, keyword string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("keyword", keyword)

	var out suggestResponse
	if err := c.getJSON(ctx, c.baseURL+"/suggest.json?"+q.Encode(), &out); err != nil {
		return nil, err
	}

	names := make([]string, 0, limit)
	if out.Embedded == nil {
		return names, nil
	}
	for _, a := range out.Embedded.Attractions {
		if a.Name == "" {
			continue
		}
		names = append(names, a.Name)
		if len(names) == limit {
			break
		}
	}
	return names, nil
}

// GetEvent fetches a single event by its provider id.
func (c *Client) GetEvent(ctx context.Context, id string) (*RawEvent, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)

	var ev RawEvent
	if err := c.getJSON(ctx, c.baseURL+"/events/"+url.PathEscape(id)+".json?"+q.Encode(), &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		zlog.Warn().Err(err).Str("url", req.URL.Path).Msg("ticketmaster request failed")
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.ErrUpstream("ticketmaster request timed out")
		}
		return domain.ErrUpstream("ticketmaster unreachable")
	}
	defer resp.Body.Close()

	zlog.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("url", req.URL.Path).
		Msg("ticketmaster request completed")

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound("event not found")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnostic))
		return domain.ErrUpstreamMeta(
			fmt.Sprintf("ticketmaster responded %d", resp.StatusCode),
			map[string]string{"status": strconv.Itoa(resp.StatusCode), "body": string(body)},
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.ErrUpstream("ticketmaster returned malformed JSON")
	}
	return nil
}
