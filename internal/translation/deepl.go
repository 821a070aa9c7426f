package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/deeplquery/internal"
)

const (
	// FreeEndpoint serves keys of the free tier.
	FreeEndpoint = "https://api-free.deepl.com/v2/translate"
	// ProEndpoint serves keys of the paid tier.
	ProEndpoint = "https://api.deepl.com/v2/translate"
)

// DeepLClient implements Translator against the DeepL v2 translate endpoint.
type DeepLClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// Option configures a DeepLClient.
type Option func(*DeepLClient)

// WithHTTPClient replaces the default HTTP client. nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(d *DeepLClient) {
		if c != nil {
			d.httpClient = c
		}
	}
}

// WithEndpoint overrides the tier endpoint, e.g. for a test server.
func WithEndpoint(url string) Option {
	return func(d *DeepLClient) {
		if url != "" {
			d.endpoint = url
		}
	}
}

// WithLogger sets the logger used for request tracing. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *DeepLClient) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDeepLClient creates a client for the free or the paid tier.
func NewDeepLClient(apiKey string, useFreeTier bool, opts ...Option) *DeepLClient {
	c := &DeepLClient{
		apiKey:     apiKey,
		endpoint:   Endpoint(useFreeTier),
		httpClient: http.DefaultClient,
		logger:     logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the translate URL for the given tier.
func Endpoint(useFreeTier bool) string {
	if useFreeTier {
		return FreeEndpoint
	}
	return ProEndpoint
}

// Name returns the engine name
func (c *DeepLClient) Name() string {
	return string(EngineDeepL)
}

// Translate POSTs req and decodes the reply. There is no retry.
func (c *DeepLClient) Translate(ctx context.Context, req *Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "deeplquery/"+internal.Version)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"endpoint":    c.endpoint,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Translation request completed")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: err}
	}

	return decodeResponse(resp.StatusCode, data)
}

type wireResponse struct {
	Translations *[]Item `json:"translations"`
}

// decodeResponse turns a raw reply into a Response. Non-2xx replies carry
// DeepL's error message instead of translations and are schema mismatches.
func decodeResponse(status int, data []byte) (*Response, error) {
	if status < 200 || status > 299 {
		return nil, &DecodeError{
			StatusCode: status,
			Body:       string(data),
			Err:        fmt.Errorf("unexpected status %d: %s", status, truncate(string(data), 200)),
		}
	}

	var wire wireResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &DecodeError{StatusCode: status, Body: string(data), Err: err}
	}
	if wire.Translations == nil {
		return nil, &DecodeError{StatusCode: status, Body: string(data), Err: errors.New("missing field translations")}
	}

	return &Response{Translations: *wire.Translations}, nil
}

// truncate shortens s to at most maxLen bytes without splitting a character.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
