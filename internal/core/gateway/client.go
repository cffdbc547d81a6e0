package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"sync"
	"syscall"
	"time"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/middleware"
)

// HealthPath is probed by HealthCheck.
const HealthPath = "/health"

// placeholders are template values shipped in example env files.
var placeholders = []string{"your-workspace-id", "x8ki-letl-twmt"}

// Client issues every outbound call to one Xano workspace and holds the
// session token. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	store   domain.TokenStore

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each call. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client for baseURL and recovers any token held in store.
// A store that cannot be read leaves the client without a token.
func New(ctx context.Context, baseURL string, store domain.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No cookie jar: credentials are never sent as cookies.
		http:  &http.Client{},
		store: store,
	}
	for _, opt := range opts {
		opt(c)
	}

	if store != nil {
		token, err := store.Load(ctx)
		if err != nil {
			logger := pkgzerolog.FromContext(ctx)
			logger.Warn().Err(err).Msg("Failed to load stored token")
		}
		c.token = token
	}
	return c
}

// BaseURL returns the configured workspace URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Configured reports whether a usable workspace URL is set.
func (c *Client) Configured() bool {
	if c.baseURL == "" {
		return false
	}
	for _, p := range placeholders {
		if strings.Contains(c.baseURL, p) {
			return false
		}
	}
	return true
}

// Token returns the held session token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// HasToken reports whether a session token is held.
func (c *Client) HasToken() bool { return c.Token() != "" }

// SetToken holds token for subsequent requests and persists it. The
// in-memory token is replaced even when persisting fails.
func (c *Client) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if err := c.store.Save(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// ClearToken drops the held token and empties the store slot.
func (c *Client) ClearToken(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Call implements Caller.
func (c *Client) Call(ctx context.Context, ep Endpoint) Response {
	return c.Request(ctx, ep.Method, ep.Target(), ep.Body, ep.Header)
}

// Get issues a GET.
func (c *Client) Get(ctx context.Context, path string) Response {
	return c.Request(ctx, http.MethodGet, path, nil, nil)
}

// Post issues a POST with an optional JSON or *Form body.
func (c *Client) Post(ctx context.Context, path string, body any) Response {
	return c.Request(ctx, http.MethodPost, path, body, nil)
}

// Put issues a PUT.
func (c *Client) Put(ctx context.Context, path string, body any) Response {
	return c.Request(ctx, http.MethodPut, path, body, nil)
}

// Patch issues a PATCH.
func (c *Client) Patch(ctx context.Context, path string, body any) Response {
	return c.Request(ctx, http.MethodPatch, path, body, nil)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, body any) Response {
	return c.Request(ctx, http.MethodDelete, path, body, nil)
}

// Request sends one call to baseURL+path and folds the outcome into a
// Response. It never returns an error value and never retries.
func (c *Client) Request(ctx context.Context, method, path string, body any, header http.Header) (resp Response) {
	logger := pkgzerolog.FromContext(ctx)

	if !c.Configured() {
		logger.Warn().Str("path", path).Msg("Xano not configured - using mock data")
		return Unconfigured()
	}

	ctx, span := middleware.StartSpan(ctx, "gateway.request", trace.WithAttributes(
		attribute.String("layer", "gateway"),
		attribute.String("method", method),
		attribute.String("path", path),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		outcome := "ok"
		if resp.Failed() {
			outcome = resp.Kind.String()
			span.SetAttributes(attribute.String("error.kind", outcome))
		}
		span.SetAttributes(attribute.Int("http.status", resp.Status))
		middleware.ObserveGatewayRequest(method, outcome, time.Since(start))
	}()

	url := c.baseURL + path

	req, err := c.newRequest(ctx, method, url, body, header)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Str("url", url).Msg("Build request failed")
		return failure(KindRequest, 0, err.Error())
	}

	logger.Debug().Str("method", method).Str("url", url).Msg("Making request")

	httpResp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		msg := classify(err)
		logger.Error().Err(err).Str("url", url).Str("classified", msg).Msg("Network error")
		return failure(KindNetwork, 0, msg)
	}
	defer httpResp.Body.Close()

	logger.Debug().Int("status", httpResp.StatusCode).Str("url", url).Msg("Response received")

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Str("url", url).Msg("Read response body failed")
		return failure(KindNetwork, httpResp.StatusCode, classify(err))
	}

	resp = Interpret(httpResp.StatusCode, httpResp.Header.Get("Content-Type"), raw)
	if resp.Failed() {
		logger.Error().Int("status", httpResp.StatusCode).Str("error", resp.Error).Msg("API error")
	}
	return resp
}

// Interpret folds a received status line and body into a Response. It is
// shared by every Caller so local and remote answers look the same.
func Interpret(status int, contentType string, raw []byte) Response {
	data := negotiate(contentType, raw)
	if status < 200 || status > 299 {
		return failure(KindApplication, status, errorMessage(data, status))
	}
	return Response{Data: data, Status: status}
}

// Unconfigured is the envelope returned for any call made without a usable
// workspace URL.
func Unconfigured() Response {
	return failure(KindConfig, 0, MsgNotConfigured)
}

func (c *Client) newRequest(ctx context.Context, method, url string, body any, header http.Header) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType = "application/json"
	)

	switch b := body.(type) {
	case nil:
	case *Form:
		r, ct, err := b.encode()
		if err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
		reader, contentType = r, ct
	case json.RawMessage:
		reader = bytes.NewReader(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", contentType)
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// HealthCheck probes HealthPath. Any failure reads as unreachable.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// negotiate turns a response body into JSON. Declared JSON and JSON-looking
// text are kept as is; anything else becomes {"message": <text>}.
func negotiate(contentType string, raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)

	if isJSONContent(contentType) && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}

	wrapped, _ := json.Marshal(map[string]string{"message": string(raw)})
	return wrapped
}

func isJSONContent(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// errorMessage prefers the body's message, then its error, then the
// status line.
func errorMessage(data json.RawMessage, status int) string {
	var body struct {
		Message any `json:"message"`
		Error   any `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if s, ok := body.Message.(string); ok && s != "" {
			return s
		}
		if s, ok := body.Error.(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// classify maps a transport error to a readable message. Cross-origin
// detection is a substring match and only a hint.
func classify(err error) string {
	var (
		dnsErr *net.DNSError
		opErr  *net.OpError
		netErr net.Error
	)

	switch {
	case errors.Is(err, context.Canceled):
		return MsgCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return MsgTimeout
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH),
		errors.As(err, &opErr) && opErr.Op == "dial":
		return MsgUnreachable
	case strings.Contains(strings.ToUpper(err.Error()), "CORS"):
		return MsgCrossOrigin
	default:
		return MsgNetwork + ": " + err.Error()
	}
}
