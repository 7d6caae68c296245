package cricbuzz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/resilience"
	"github.com/riskibarqy/cricbuzz-livestats/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultHost    = "cricbuzz-cricket.p.rapidapi.com"
	maxBodyBytes   = 6 << 20
	logPreviewSize = 240
)

var errCricbuzzTransient = crerr.New("cricbuzz transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Host           string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the Cricbuzz API on RapidAPI. It never retries; every failure
// is returned to the caller as a status, transport or decode error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	var httpClient *http.Client
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		httpClient = &copied
	} else {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = DefaultHost
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://" + host
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       host,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker,
			resilience.WithFailurePredicate(isCricbuzzCircuitFailure),
			resilience.WithStateChangeHook(func(from, to resilience.CircuitState) {
				logger.Warn("cricbuzz circuit breaker changed state", "from", from, "to", to)
			}),
		),
	}
}

// Host is the RapidAPI host the client talks to.
func (c *Client) Host() string {
	return c.host
}

func (c *Client) Fetch(ctx context.Context, req usecase.FeedRequest) (jsontree.Node, error) {
	fullURL := c.baseURL + req.CacheKey()
	// The shared request is bounded by httpClient.Timeout, not by whichever
	// caller started it.
	shared := context.WithoutCancel(ctx)
	results := c.flight.DoChan(fullURL, func() (any, error) {
		var raw []byte
		err := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(shared, fullURL)
			return reqErr
		})
		return raw, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return jsontree.Node{}, fmt.Errorf("%w: %w", usecase.ErrFeedTransport, ctx.Err())
	case res = <-results:
	}

	out, err := res.Val, res.Err
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "cricbuzz circuit breaker rejected request", "path", req.Path)
		return jsontree.Node{}, fmt.Errorf("%w: cricbuzz api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return jsontree.Node{}, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return jsontree.Node{}, fmt.Errorf("unexpected response payload type %T", out)
	}

	doc, err := jsontree.Parse(raw)
	if err != nil {
		c.logger.WarnContext(ctx, "cricbuzz returned undecodable body", "path", req.Path, "body", abbreviateBody(raw))
		return jsontree.Node{}, fmt.Errorf("%w: decode %s: %v", usecase.ErrFeedMalformed, req.Path, err)
	}
	return doc, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = crerr.Mark(
			fmt.Errorf("%w: send request: %s", usecase.ErrFeedTransport, c.sanitize(err.Error())),
			transportMark(err),
		)
		c.logger.WarnContext(ctx, "cricbuzz request failed", "url", redactAPIURL(fullURL), "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		err = crerr.Mark(
			fmt.Errorf("%w: read response body: %s", usecase.ErrFeedTransport, c.sanitize(err.Error())),
			transportMark(err),
		)
		c.logger.WarnContext(ctx, "cricbuzz response read failed", "url", redactAPIURL(fullURL), "error", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var statusErr error = &usecase.FeedStatusError{StatusCode: resp.StatusCode, Body: string(raw)}
		if isTransientStatus(resp.StatusCode) {
			statusErr = crerr.Mark(statusErr, errCricbuzzTransient)
		}
		c.logger.WarnContext(ctx, "cricbuzz returned non-200 status",
			"url", redactAPIURL(fullURL),
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		return nil, statusErr
	}
	return raw, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

// transportMark tags a failed exchange. A cancelled request says nothing
// about the health of the API.
func transportMark(err error) error {
	if crerr.Is(err, context.Canceled) {
		return context.Canceled
	}
	return errCricbuzzTransient
}

func isCricbuzzCircuitFailure(err error) bool {
	return crerr.Is(err, errCricbuzzTransient) && !crerr.Is(err, context.Canceled)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// redactAPIURL drops the query string, which may carry user input.
func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= logPreviewSize {
		return text
	}
	return usecase.Preview(text, logPreviewSize) + "..."
}
