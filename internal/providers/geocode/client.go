package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

const maxDiagnostic = 200

// Result is a resolved address coordinate.
type Result struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, http: &http.Client{Timeout: timeout}}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

type rawResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// Geocode resolves a free-form address to a coordinate. Addresses Google
// cannot resolve map to a not_found error with refinement hints.
func (c *Client) Geocode(ctx context.Context, address string) (*Result, error) {
	if !c.Configured() {
		return nil, domain.ErrUnavailable("geocoding not configured")
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		zlog.Warn().Err(err).Msg("geocoding request failed")
		return nil, domain.ErrUpstream("geocoding service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnostic))
		return nil, domain.ErrUpstreamMeta(
			fmt.Sprintf("geocoding service responded %d", resp.StatusCode),
			map[string]string{"status": strconv.Itoa(resp.StatusCode), "body": string(body)},
		)
	}

	var raw rawResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, domain.ErrUpstream("geocoding service returned malformed JSON")
	}

	switch raw.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, domain.ErrNotFoundMeta("no results found for address", map[string]string{
			"address":    address,
			"suggestion": "try adding a city, state or ZIP code",
		})
	default:
		zlog.Warn().Str("status", raw.Status).Str("error", raw.ErrorMessage).Msg("geocoding rejected request")
		return nil, domain.ErrUpstreamMeta("geocoding failed: "+raw.Status,
			map[string]string{"status": raw.Status})
	}

	if len(raw.Results) == 0 {
		return nil, domain.ErrNotFoundMeta("no results found for address", map[string]string{
			"address":    address,
			"suggestion": "try adding a city, state or ZIP code",
		})
	}

	r := raw.Results[0]
	return &Result{
		Latitude:         r.Geometry.Location.Lat,
		Longitude:        r.Geometry.Location.Lng,
		FormattedAddress: r.FormattedAddress,
	}, nil
}
