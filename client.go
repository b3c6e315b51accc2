package dub

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dubinc/dub-go/headers"
)

const defaultBaseURL = "https://api.dub.co"

var defaultUserAgent = "dub-go/" + Version

// Config wires authentication, workspace scope, base URL, and telemetry for the API client.
type Config struct {
	BaseURL     string
	Token       string
	WorkspaceID string
	HTTPClient  *http.Client
	// Timeout applies to the default HTTP client only; it is ignored when
	// HTTPClient is set.
	Timeout   time.Duration
	Telemetry TelemetryHooks
	// Logger receives one debug line per request and response. The zero
	// value discards everything.
	Logger         zerolog.Logger
	UserAgent      string
	DefaultHeaders map[string]string
}

// Client provides typed access to the Dub API. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	auth           authChain
	telemetry      TelemetryHooks
	logger         zerolog.Logger
	userAgent      string
	defaultHeaders http.Header

	// Grouped service clients.
	Links      *LinksClient
	Tags       *TagsClient
	Workspaces *WorkspacesClient
	QRCodes    *QRCodesClient
	Analytics  *AnalyticsClient
	Domains    *DomainsClient
	Metatags   *MetatagsClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	token := normalizeToken(cfg.Token)
	if token == "" {
		return nil, ConfigError{Reason: "token required"}
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	defaults := http.Header{}
	for k, v := range cfg.DefaultHeaders {
		if strings.TrimSpace(k) == "" {
			continue
		}
		defaults.Set(k, v)
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		auth: authChain{
			bearerAuth{token: token},
			workspaceScope{id: strings.TrimSpace(cfg.WorkspaceID)},
		},
		telemetry:      cfg.Telemetry,
		logger:         cfg.Logger,
		userAgent:      ua,
		defaultHeaders: defaults,
	}
	client.Links = &LinksClient{client: client}
	client.Tags = &TagsClient{client: client}
	client.Workspaces = &WorkspacesClient{client: client}
	client.QRCodes = &QRCodesClient{client: client}
	client.Analytics = &AnalyticsClient{client: client}
	client.Domains = &DomainsClient{client: client}
	client.Metatags = &MetatagsClient{client: client}
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ConfigError{Reason: "base URL required"}
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("dub: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", ConfigError{Reason: "base URL missing scheme (http/https)"}
	}
	if u.Host == "" {
		return "", ConfigError{Reason: "base URL missing host"}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// call runs one request/response exchange and returns either the decoded
// value or a typed error, never both.
func call[T any](ctx context.Context, c *Client, method, route string, params any, opts []CallOption) (T, error) {
	var out T
	if err := c.do(ctx, method, route, params, &out, opts); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, route string, params, out any, opts []CallOption) error {
	co := buildCallOptions(opts)
	desc, err := BuildRequest(c.baseURL, method, route, params)
	if err != nil {
		return err
	}
	if co.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, co.timeout)
		defer cancel()
	}
	req, err := c.newRequest(ctx, desc, co)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	return mapResponse(resp, out, co.raw)
}

func (c *Client) newRequest(ctx context.Context, desc *RequestDescriptor, co callOptions) (*http.Request, error) {
	var body io.Reader
	if desc.Body != nil {
		body = bytes.NewReader(desc.Body)
	}
	if co.workspace != "" {
		q := desc.URL.Query()
		q.Set(workspaceParam, co.workspace)
		desc.URL.RawQuery = q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method, desc.URL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("dub: new request: %w", err)
	}
	for k, vs := range c.defaultHeaders {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range desc.Header {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range co.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set(headers.UserAgent, c.userAgent)
	}
	c.auth.Apply(req)
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	ctx := req.Context()
	requestID := req.Header.Get(headers.RequestID)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(ctx, req)
	}
	c.telemetry.log(ctx, LogLevelInfo, "http_request", map[string]any{
		"method":     req.Method,
		"url":        req.URL.String(),
		"request_id": requestID,
	})
	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("request_id", requestID).
		Msg("http_request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(ctx, req, resp, err, latency)
	}
	c.telemetry.metric(ctx, "sdk_http_request_latency_ms", float64(latency.Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		c.telemetry.log(ctx, LogLevelError, "http_error", map[string]any{
			"method":     req.Method,
			"url":        req.URL.String(),
			"request_id": requestID,
			"error":      err.Error(),
		})
		c.logger.Warn().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("request_id", requestID).
			Msg("http_error")
		return nil, fmt.Errorf("dub: %s %s: %w", req.Method, req.URL.Path, err)
	}
	event := c.logger.Debug()
	if resp.StatusCode >= 400 {
		event = c.logger.Warn()
	}
	event.
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", latency).
		Str("request_id", requestID).
		Msg("http_response")
	if resp.Header == nil {
		resp.Header = http.Header{}
	}
	if resp.Header.Get(headers.RequestID) == "" {
		resp.Header.Set(headers.RequestID, requestID)
	}
	return resp, nil
}
