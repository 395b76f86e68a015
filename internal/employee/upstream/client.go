// Package upstream talks to the external employee API. It unwraps the
// {data, status} envelope, translates HTTP failures into domain error codes
// and retries transient failures of read operations.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"employee-api/internal/employee/models"
	"employee-api/internal/platform/metrics"
	dErrors "employee-api/pkg/domain-errors"
	"employee-api/pkg/platform/retry"
	"employee-api/pkg/requestcontext"
)

const (
	tracerName       = "employee-api/upstream"
	maxResponseBytes = 8 << 20
)

// Client is safe for concurrent use. Its only shared state is the
// underlying *http.Client connection pool.
type Client struct {
	cfg     Config
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(c *Client)

// WithHTTPClient replaces the default *http.Client. Its Timeout is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New constructs a Client. Unset Config fields take DefaultConfig values.
func New(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns every employee in upstream order. It never returns a nil slice.
func (c *Client) List(ctx context.Context) (employees []models.Employee, err error) {
	ctx, span := c.startSpan(ctx, "list", http.MethodGet)
	defer func() { endSpan(span, err) }()

	env, err := getWithRetry[[]models.Employee](ctx, c, "list", c.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []models.Employee{}, nil
	}
	span.SetAttributes(attribute.Int("employee.count", len(*env.Data)))
	return *env.Data, nil
}

// Fetch returns the employee with id. found is false when the upstream
// answers 404 or an empty envelope; a 404 is never retried.
func (c *Client) Fetch(ctx context.Context, id string) (employee models.Employee, found bool, err error) {
	ctx, span := c.startSpan(ctx, "fetch", http.MethodGet)
	defer func() { endSpan(span, err) }()

	env, err := getWithRetry[models.Employee](ctx, c, "fetch", c.itemURL(id))
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			c.logger.WarnContext(ctx, "employee not found upstream",
				"employee_id", id,
				"request_id", requestcontext.RequestID(ctx),
			)
			return models.Employee{}, false, nil
		}
		return models.Employee{}, false, err
	}
	if env.Data == nil {
		return models.Employee{}, false, nil
	}
	return *env.Data, true, nil
}

// Create posts in and returns the created employee. POST is not idempotent,
// so it is attempted exactly once. created is false when the upstream answers
// with an empty envelope.
func (c *Client) Create(ctx context.Context, in models.Input) (employee models.Employee, created bool, err error) {
	ctx, span := c.startSpan(ctx, "create", http.MethodPost)
	defer func() { endSpan(span, err) }()

	body, err := c.send(ctx, "create", http.MethodPost, c.cfg.BaseURL, in, 1)
	if err != nil {
		return models.Employee{}, false, err
	}
	env, err := decodeEnvelope[models.Employee](body)
	if err != nil {
		return models.Employee{}, false, err
	}
	if env.Data == nil {
		c.logger.WarnContext(ctx, "upstream create returned no employee",
			"request_id", requestcontext.RequestID(ctx),
		)
		return models.Employee{}, false, nil
	}
	return *env.Data, true, nil
}

// Delete removes the employee with id and returns its name. found is false
// when the upstream does not know the employee.
func (c *Client) Delete(ctx context.Context, id string) (name string, found bool, err error) {
	ctx, span := c.startSpan(ctx, "delete", http.MethodDelete)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("upstream.delete_mode", string(c.cfg.DeleteMode)))

	if c.cfg.DeleteMode == DeleteByName {
		return c.deleteByName(ctx, id)
	}
	return c.deleteByID(ctx, id)
}

func (c *Client) deleteByID(ctx context.Context, id string) (string, bool, error) {
	body, err := c.send(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, 1)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	env, err := decodeEnvelope[string](body)
	if err != nil {
		return "", false, err
	}
	if env.Data == nil {
		return "", false, nil
	}
	return *env.Data, true, nil
}

func (c *Client) deleteByName(ctx context.Context, id string) (string, bool, error) {
	employee, found, err := c.Fetch(ctx, id)
	if err != nil || !found {
		return "", false, err
	}

	body, err := c.send(ctx, "delete", http.MethodDelete, c.cfg.BaseURL, models.DeleteByName{Name: employee.Name}, 1)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	env, err := decodeEnvelope[bool](body)
	if err != nil {
		return "", false, err
	}
	if env.Data == nil || !*env.Data {
		return "", false, nil
	}
	return employee.Name, true, nil
}

func (c *Client) itemURL(id string) string {
	return c.cfg.BaseURL + "/" + url.PathEscape(id)
}

func (c *Client) retryPolicy(ctx context.Context, op string) retry.Policy {
	return retry.Policy{
		MaxAttempts: c.cfg.MaxAttempts,
		Delay:       c.cfg.InitialBackoff,
		Multiplier:  c.cfg.BackoffMultiplier,
		Retryable:   isRetryable,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			c.logger.WarnContext(ctx, "retrying upstream request",
				"op", op,
				"attempt", attempt,
				"backoff_ms", wait.Milliseconds(),
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		},
	}
}

// getWithRetry performs a GET and unwraps the envelope, retrying transient
// failures. Decoding errors are not retried.
func getWithRetry[T any](ctx context.Context, c *Client, op, target string) (models.Envelope[T], error) {
	return retry.Do(ctx, c.retryPolicy(ctx, op), func(ctx context.Context, attempt int) (models.Envelope[T], error) {
		body, err := c.send(ctx, op, http.MethodGet, target, nil, attempt)
		if err != nil {
			return models.Envelope[T]{}, err
		}
		env, err := decodeEnvelope[T](body)
		if err == nil && env.Status != "" {
			c.logger.DebugContext(ctx, "upstream envelope status", "op", op, "status", env.Status)
		}
		return env, err
	})
}

// send performs a single attempt and returns the raw body of a 2xx response.
func (c *Client) send(ctx context.Context, op, method, target string, payload any, attempt int) ([]byte, error) {
	requestID := requestcontext.RequestID(ctx)
	c.logger.InfoContext(ctx, "upstream request",
		"op", op,
		"method", method,
		"attempt", attempt,
		"request_id", requestID,
	)

	start := time.Now()
	status, body, err := c.roundTrip(ctx, method, target, payload)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.ObserveUpstream(op, string(dErrors.CodeOf(err)), elapsed)
		c.logger.WarnContext(ctx, "upstream request failed",
			"op", op,
			"method", method,
			"attempt", attempt,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
			"request_id", requestID,
		)
		return nil, err
	}

	c.metrics.ObserveUpstream(op, "success", elapsed)
	c.logger.InfoContext(ctx, "upstream request succeeded",
		"op", op,
		"method", method,
		"attempt", attempt,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", requestID,
	)
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, payload any) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode upstream request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "upstream request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to read upstream response")
	}
	if err := translateStatus(resp.StatusCode); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func (c *Client) startSpan(ctx context.Context, op, method string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "upstream."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("upstream.op", op),
		),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
	}
	span.End()
}
