package animix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/logging"
	"github.com/bnema/animix-bot/internal/ports"
)

const (
	DefaultBaseURL    = "https://pro-api.animix.tech"
	DefaultTimeout    = 20 * time.Second
	DefaultMaxRetries = 3
	DefaultBackoff    = time.Second

	maxResponseBytes = 1 << 20
	authHeader       = "tg-init-data"
)

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	// HTTPClient serves sessions without a proxy. Proxied sessions always get
	// a dedicated transport.
	HTTPClient *http.Client
	Clock      ports.Clock
	Logger     *logging.Logger
	Metrics    *logging.Metrics
}

// Client talks to the game backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	direct     *http.Client
	clock      ports.Clock
	logger     *logging.Logger
	metrics    *logging.Metrics

	mu      sync.Mutex
	proxied map[string]*http.Client
}

var _ ports.GameAPI = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := buildAPIURL(baseURL, "/"); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    baseURL,
		timeout:    opts.Timeout,
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
		direct:     opts.HTTPClient,
		clock:      opts.Clock,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		proxied:    make(map[string]*http.Client),
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	if c.backoff <= 0 {
		c.backoff = DefaultBackoff
	}
	if c.direct == nil {
		transport, err := newTransport("")
		if err != nil {
			return nil, err
		}
		c.direct = &http.Client{Transport: transport}
	}
	if c.clock == nil {
		c.clock = ports.SystemClock{}
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}

	return c, nil
}

func (c *Client) get(ctx context.Context, session domain.Session, path string, out any) error {
	return c.do(ctx, session, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, session domain.Session, path string, payload any, out any) error {
	return c.do(ctx, session, http.MethodPost, path, payload, out)
}

// do performs one logical call: the first attempt plus up to maxRetries
// retries, waiting backoff*2^(n-1) before retry n.
func (c *Client) do(ctx context.Context, session domain.Session, method string, path string, payload any, out any) error {
	endpoint, err := buildAPIURL(c.baseURL, path)
	if err != nil {
		return err
	}

	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", path, err)
		}
	}

	httpClient, err := c.httpClientFor(session.Proxy)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff << (attempt - 1)
			c.logger.Warn("retrying request",
				"url", endpoint,
				"in", wait,
				"attempts_left", c.maxRetries-attempt+1,
				"error", lastErr,
			)
			if err := c.clock.Sleep(ctx, wait); err != nil {
				return err
			}
		}

		lastErr = c.attempt(ctx, httpClient, session, method, endpoint, body, out)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !IsRetryable(lastErr) {
			break
		}
	}

	if c.metrics != nil {
		c.metrics.RequestsFailed.Inc()
	}
	c.logger.Error("request failed", lastErr, "url", endpoint)

	return lastErr
}

func (c *Client) attempt(ctx context.Context, httpClient *http.Client, session domain.Session, method string, endpoint string, body []byte, out any) error {
	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(authHeader, session.Token)

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &NetworkError{Method: method, URL: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &NetworkError{Method: method, URL: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{Method: method, URL: endpoint, Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	return decodeResult(endpoint, data, out)
}

type envelope struct {
	Result json.RawMessage `json:"result"`
}

// decodeResult unpacks the "result" field into out. A missing or null result
// leaves out untouched.
func decodeResult(endpoint string, data []byte, out any) error {
	if out == nil {
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return &DecodeError{URL: endpoint, Err: err}
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return &DecodeError{URL: endpoint, Err: err}
	}

	return nil
}

func (c *Client) httpClientFor(proxyAddr string) (*http.Client, error) {
	normalized := NormalizeProxy(proxyAddr)
	if normalized == "" {
		return c.direct, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.proxied[normalized]; ok {
		return client, nil
	}

	transport, err := newTransport(normalized)
	if err != nil {
		return nil, fmt.Errorf("configure proxy: %w", err)
	}

	client := &http.Client{Transport: transport}
	c.proxied[normalized] = client
	return client, nil
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return parsed.JoinPath(path).String(), nil
}
