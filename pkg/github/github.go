package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/samber/oops"
	"golang.org/x/xerrors"
	"k8s.io/utils/clock"

	"github.com/aquasecurity/ghsa-feed/pkg/log"
	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

const (
	DefaultEndpoint  = "https://api.github.com/graphql"
	DefaultUserAgent = "ghsa-feed"
	DefaultTimeout   = 30 * time.Second

	// Versioned media type of the GraphQL API
	mediaType = "application/vnd.github.v4.idl"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends GraphQL documents to the GitHub API. The access token is
// only ever written to the Authorization header.
type Client struct {
	Clock      clock.Clock
	HTTPClient HTTPClient
	Endpoint   string
	UserAgent  string

	token string
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.Endpoint = endpoint
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

// WithTimeout bounds the whole request, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
}

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

func WithClock(clk clock.Clock) Option {
	return func(c *Client) {
		c.Clock = clk
	}
}

func NewClient(token string, opts ...Option) Client {
	c := Client{
		Clock:      clock.RealClock{},
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Endpoint:   DefaultEndpoint,
		UserAgent:  DefaultUserAgent,
		token:      token,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type graphQLRequest struct {
	Query string `json:"query"`
}

// Query posts the document once and returns the raw response body. The HTTP
// status is not interpreted; error responses are left to the caller's
// decoding.
func (c Client) Query(ctx context.Context, document string) ([]byte, error) {
	if c.token == "" {
		return nil, &types.ConfigurationError{Err: xerrors.New("GitHub access token is not set")}
	}

	payload, err := json.Marshal(graphQLRequest{Query: document})
	if err != nil {
		return nil, xerrors.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &types.ConfigurationError{Err: oops.With("endpoint", c.Endpoint).Wrapf(err, "invalid endpoint")}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("Accept", mediaType)
	req.Header.Set("Content-Type", "application/json")

	logger := log.WithPrefix("github")
	start := c.Clock.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug("GraphQL request failed", log.Err(err))
		return nil, &types.TransportError{Err: oops.In("github").With("endpoint", c.Endpoint).Wrapf(err, "http request error")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.TransportError{Err: oops.In("github").With("endpoint", c.Endpoint).Wrapf(err, "response read error")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Unexpected status code", log.Int("status", resp.StatusCode))
	}
	logger.Debug("GraphQL request completed", log.Int("status", resp.StatusCode),
		log.Int("bytes", len(body)), log.Duration("elapsed", c.Clock.Since(start)))

	return body, nil
}
