package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dvcrn/ht/internal/logger"
	"github.com/dvcrn/ht/internal/transport"
)

// Options is the immutable configuration for one Client. All fields are
// fixed at construction; nothing mutates them afterwards.
type Options struct {
	UserAgent string
	RequestID string
	Transport transport.Doer
}

// Client issues exactly one request per program run, with a fixed set of
// default headers attached to everything it sends.
type Client struct {
	httpClient transport.Doer
	userAgent  string
	requestID  string
}

// NewClient creates a client from opts. A nil Transport falls back to the
// default shared *http.Client.
func NewClient(opts Options) *Client {
	doer := opts.Transport
	if doer == nil {
		doer = transport.New()
	}
	return &Client{
		httpClient: doer,
		userAgent:  opts.UserAgent,
		requestID:  opts.RequestID,
	}
}

// Get issues an HTTP GET with no body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	return c.send(req)
}

// Post serializes pairs into a JSON object and issues an HTTP POST with it.
// Pairs are applied in order, so on duplicate keys the last value wins.
func (c *Client) Post(ctx context.Context, url string, pairs []KVPair) (*http.Response, error) {
	body := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		body[pair.Key] = pair.Value
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Powered-By", "ht")
	req.Header.Set("User-Agent", c.userAgent)
	if c.requestID != "" {
		req.Header.Set("X-Request-ID", c.requestID)
	}

	logger.Get().Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", c.requestID).
		Msg("sending request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request execution error: %w", err)
	}

	logger.Get().Debug().
		Str("status", resp.Status).
		Dur("elapsed", time.Since(start)).
		Msg("response received")
	return resp, nil
}
