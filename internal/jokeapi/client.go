package jokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Client talks to the JokeAPI HTTP endpoint.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	category  string
	blacklist []string
	logger    zerolog.Logger
}

const (
	// DefaultEndpoint is the public JokeAPI v2 base URL.
	DefaultEndpoint = "https://v2.jokeapi.dev"
	// DefaultCategory asks the provider for a joke from any category.
	DefaultCategory = "Any"

	defaultUserAgent = "chuckle/0.1"
	typeTwoPart      = "twopart"
	maxBodyBytes     = 1 << 20
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithCategory selects the joke category path segment (e.g. "Programming").
func WithCategory(category string) Option {
	return func(c *Client) {
		if category = strings.TrimSpace(category); category != "" {
			c.category = category
		}
	}
}

// WithBlacklist excludes jokes carrying any of the given flags. Unknown
// flag names are ignored.
func WithBlacklist(flags ...string) Option {
	return func(c *Client) {
		c.blacklist = c.blacklist[:0]
		for _, f := range flags {
			f = strings.ToLower(strings.TrimSpace(f))
			if knownFlags[f] {
				c.blacklist = append(c.blacklist, f)
			}
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l.With().Str("component", "jokeapi").Logger()
	}
}

// NewClient builds a Client for the given endpoint. An empty endpoint uses
// DefaultEndpoint. The http.Client has no timeout; callers bound requests
// through the context.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		category:  DefaultCategory,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the normalized base URL.
func (c *Client) Endpoint() string {
	return c.baseURL.String()
}

// FetchRandom retrieves one random two-part joke. Exactly one request is
// made per call.
func (c *Client) FetchRandom(ctx context.Context) (*RawJoke, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("type", typeTwoPart)
	if len(c.blacklist) > 0 {
		values.Set("blacklistFlags", strings.Join(c.blacklist, ","))
	}
	rel := &url.URL{Path: path.Join("joke", c.category), RawQuery: values.Encode()}

	var payload RawJoke
	if err := c.get(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With().Str("request_id", requestID).Str("url", reqURL.String()).Logger()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("provider unreachable")
		return &TransportError{URL: reqURL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &TransportError{URL: reqURL.String(), Err: fmt.Errorf("read body: %w", err)}
	}
	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("provider responded")

	if resp.StatusCode/100 != 2 || gjson.GetBytes(body, "error").Bool() {
		return newStatusError(resp, body)
	}
	// A bare null or array would decode into a zero payload.
	if !gjson.ParseBytes(body).IsObject() {
		return &DecodeError{Err: errNotObject}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// newStatusError extracts the provider's own explanation when the body is a
// JokeAPI error document.
func newStatusError(resp *http.Response, body []byte) *StatusError {
	se := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	if !gjson.ValidBytes(body) {
		return se
	}
	parts := make([]string, 0, 2)
	for _, field := range []string{"message", "additionalInfo"} {
		if v := strings.TrimSpace(gjson.GetBytes(body, field).String()); v != "" {
			parts = append(parts, v)
		}
	}
	se.Message = strings.Join(parts, " - ")
	return se
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
