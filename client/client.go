package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultPrefix = "/api/orders"

// Client talks to the Orders API. Each call issues exactly one request; there
// are no retries and no timeout beyond what ctx and the http.Client impose.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	log     *log.Entry
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithPrefix sets the orders collection path, "/api/orders" by default.
// Older deployments serve it at "/orders".
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = "/" + strings.Trim(prefix, "/")
	}
}

func WithLogger(entry *log.Entry) Option {
	return func(c *Client) { c.log = entry }
}

type requestIDKey struct{}

// WithRequestID returns a context whose outgoing calls carry id as their
// X-Request-ID instead of a fresh one.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  DefaultPrefix,
		http:    http.DefaultClient,
		log:     log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends one request. A 2xx response body is decoded into out when out is
// non-nil and the body is not empty; anything else becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	requestID := RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger := c.log.WithFields(log.Fields{
		"method":    method,
		"path":      path,
		"requestId": requestID,
	})

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Error("orders api request failed")
		return &APIError{Message: errors.Wrapf(err, "%s %s", method, path).Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: errors.Wrap(err, "read response").Error()}
	}

	logger = logger.WithFields(log.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := errorFromResponse(resp.StatusCode, raw)
		logger.WithField("message", apiErr.Message).Warn("orders api returned an error")
		return apiErr
	}
	logger.Debug("orders api request done")

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: errors.Wrap(err, "decode response").Error()}
	}
	return nil
}
