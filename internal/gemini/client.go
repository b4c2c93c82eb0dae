package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the base URL for Gemini model calls.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is the model the review is requested from.
	DefaultModel = "gemini-1.5-flash"

	apiKeyHeader = "x-goog-api-key"
)

// ErrNoCredential is returned by NewClient when the API key is empty.
var ErrNoCredential = errors.New("gemini API key is not set")

// Options configures a Client.
type Options struct {
	Credential string
	Endpoint   string
	Model      string
	// HTTPClient defaults to a client with no timeout.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client sends review requests to the generateContent endpoint. It holds no
// per-request state and may be shared.
type Client struct {
	apiKey string
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewClient creates a Client. The credential is only checked for presence.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Credential) == "" {
		return nil, ErrNoCredential
	}
	endpoint := strings.TrimRight(opts.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		apiKey: opts.Credential,
		url:    fmt.Sprintf("%s/%s:generateContent", endpoint, model),
		client: hc,
		logger: logger,
	}, nil
}

// URL returns the full generateContent URL the client posts to.
func (c *Client) URL() string { return c.url }

// Send performs a single POST and returns the raw body on a 2xx status.
// Non-2xx statuses and transport faults come back as failure results; the
// response body of a failed status is discarded.
func (c *Client) Send(ctx context.Context, payload []byte) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return transportFailure(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("review request failed", "error", err)
		return transportFailure(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("review response received",
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return httpFailure(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(fmt.Errorf("reading response: %w", err))
	}
	return success(string(body))
}

// Review sends payload and parses the response into review text. A 2xx body
// that is not JSON is reported as a transport fault.
func (c *Client) Review(ctx context.Context, payload []byte) Result {
	res := c.Send(ctx, payload)
	if !res.OK() {
		return res
	}
	parsed, err := Parse([]byte(res.Text))
	if err != nil {
		c.logger.Warn("review response is not JSON", "bytes", len(res.Text))
		return transportFailure(err)
	}
	if !parsed.OK() {
		c.logger.Info("review response missing expected field", "diagnostic", parsed.Text)
	}
	return parsed
}
