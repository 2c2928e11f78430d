package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/bitly/logger"
	"github.com/kbukum/bitly/observability"
)

// Client executes JSON exchanges against a single host over a pooled
// connection set. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	reject     RejectFunc
	metrics    *observability.Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for exchange logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRejecter replaces DefaultReject.
func WithRejecter(fn RejectFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.reject = fn
		}
	}
}

// WithHTTPClient shares an existing pool instead of creating one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMetrics records exchange metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a client for cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		reject: DefaultReject,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = NewPool(cfg)
	}
	if c.log == nil {
		c.log = logger.Get("httpclient")
	}
	c.log = c.log.WithFields(logger.Fields("client", cfg.Name))

	return c, nil
}

// NewPool creates the pooled *http.Client described by cfg.
func NewPool(cfg Config) *http.Client {
	cfg.ApplyDefaults()
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Unwrap returns the underlying *http.Client.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle connections held by the pool. A shared pool stays
// usable; new exchanges open fresh connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do executes req and returns the response. A response outside the accepted
// status set is returned together with the rejecter's error; transport
// failures return a nil response and an *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPExchange,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrHTTPMethod, req.Method),
			attribute.String(observability.AttrServerAddress, c.config.Host),
		),
	)
	defer span.End()

	start := time.Now()
	if c.metrics != nil {
		c.metrics.RecordExchangeStart(ctx)
	}

	resp, err := c.execute(ctx, req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
		span.SetAttributes(
			attribute.String(observability.AttrURLFull, resp.URL),
			attribute.Int(observability.AttrHTTPStatusCode, status),
		)
	}
	outcome := outcomeOf(resp, err)
	span.SetAttributes(attribute.String(observability.AttrOutcome, outcome))
	if err != nil {
		observability.SetSpanError(span, err)
		span.SetStatus(codes.Error, err.Error())
	}
	if c.metrics != nil {
		c.metrics.RecordExchangeEnd(ctx, req.Method, status, outcome, time.Since(start))
		if err != nil {
			c.metrics.RecordError(ctx, req.Method, outcome)
		}
	}

	return resp, err
}

func (c *Client) execute(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	target := httpReq.URL.String()
	exchangeID := uuid.NewString()
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		terr := classifyTransportError(ctx, req.Method, target, err)
		c.log.Error("exchange failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldURL, target,
			logger.FieldExchangeID, exchangeID,
			logger.FieldError, terr.Error(),
		))
		return nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, req.Method, target, fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Headers:    resp.Header,
		Body:       body,
		URL:        target,
	}

	c.logExchange(req.Method, result, resp.Proto+" "+resp.Status, exchangeID, time.Since(start))

	if !result.IsAccepted() {
		return result, c.reject(req.Method, result)
	}
	return result, nil
}

func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := c.BuildURL(req.Path, req.Query...)
	if err != nil {
		c.log.Error("failed to build request url", logger.Fields(
			logger.FieldMethod, req.Method,
			"path", req.Path,
			logger.FieldError, err.Error(),
		))
		return nil, NewBuildError(req.Method, err)
	}
	target := u.String()

	body, err := EncodeJSON(req.Body)
	if err != nil {
		return nil, NewEncodeError(req.Method, target, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewBuildError(req.Method, err)
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", ContentTypeJSON)
	}

	return httpReq, nil
}

func (c *Client) logExchange(method string, resp *Response, statusLine, exchangeID string, d time.Duration) {
	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, resp.URL,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldExchangeID, exchangeID,
	), d)

	c.log.Debug(resp.URL+" => "+statusLine, fields)
	if resp.StatusCode > http.StatusMultipleChoices {
		c.log.Warn(resp.URL+" => "+statusLine, fields)
	}
}

func reasonPhrase(resp *http.Response) string {
	if reason, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

func outcomeOf(resp *Response, err error) string {
	switch {
	case err == nil:
		return "accepted"
	case resp != nil:
		return "rejected"
	default:
		var e *Error
		if errors.As(err, &e) {
			return e.Code.String()
		}
		return "unknown"
	}
}
