package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

// expiryMargin: a cached token is never served within this margin of its
// expiry instant.
const expiryMargin = 5 * time.Minute

// tokenSource caches one client-credentials token for the process lifetime.
// The mutex guards field access only and is never held across the exchange
// call: two concurrent cache misses may both exchange, which is idempotent and
// merely wasteful. Exchange failures are not retried.
type tokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	http         *http.Client
	now          func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newTokenSource(tokenURL, clientID, clientSecret string, timeout time.Duration) *tokenSource {
	return &tokenSource{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         &http.Client{Timeout: timeout},
		now:          time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns the cached bearer token, exchanging credentials when the
// cache is empty or within the expiry margin.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	token, expiry := s.token, s.expiry
	s.mu.Unlock()

	if token != "" && s.now().Before(expiry.Add(-expiryMargin)) {
		return token, nil
	}

	if s.clientID == "" || s.clientSecret == "" {
		return "", domain.ErrUnavailable("spotify credentials not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(s.clientID + ":" + s.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		zlog.Warn().Err(err).Msg("spotify token exchange failed")
		return "", domain.ErrUpstream("spotify auth unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnostic))
		return "", domain.ErrUpstreamMeta(
			fmt.Sprintf("spotify auth responded %d", resp.StatusCode),
			map[string]string{"body": string(body)},
		)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil || tr.AccessToken == "" {
		return "", domain.ErrUpstream("spotify auth returned malformed JSON")
	}

	exp := s.now().Add(time.Duration(tr.ExpiresIn) * time.Second)

	s.mu.Lock()
	s.token, s.expiry = tr.AccessToken, exp
	s.mu.Unlock()

	zlog.Debug().Int("expires_in", tr.ExpiresIn).Msg("spotify token refreshed")
	return tr.AccessToken, nil
}
