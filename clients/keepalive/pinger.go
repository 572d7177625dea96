package keepalive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "KeepAlive/1.0"
	pingPath         = "/ping"
)

// PingResult describes a completed ping. Data holds the decoded JSON body, or the raw text
// when the body is not JSON.
type PingResult struct {
	StatusCode   int   `json:"statusCode"`
	ResponseTime int64 `json:"responseTime"`
	Data         any   `json:"data"`
}

// Pinger issues keep-alive GET requests against a deployed bot
type Pinger struct {
	httpClient *http.Client
	userAgent  string
}

// NewPinger creates a pinger whose requests give up after timeout
func NewPinger(timeout time.Duration) *Pinger {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pinger{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  DefaultUserAgent,
	}
}

// PingURL returns the ping endpoint for a service base URL
func PingURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + pingPath
}

// Ping performs a single GET request. Any HTTP status is a successful ping; only
// transport failures and timeouts return an error.
func (p *Pinger) Ping(ctx context.Context, url string) (*PingResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ping request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to ping %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ping response from %s: %w", url, err)
	}

	result := &PingResult{
		StatusCode:   resp.StatusCode,
		ResponseTime: time.Since(start).Milliseconds(),
	}
	var data any
	if err := json.Unmarshal(body, &data); err == nil {
		result.Data = data
	} else {
		result.Data = string(body)
	}
	return result, nil
}
