// Package api is the single gateway to the expense platform. Every outbound
// call goes through Client.do, which drives the shared busy indicator and
// converts failures into user-facing notifications, so no screen talks to the
// network on its own terms.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/busy"
	"github.com/ledgerline/ledgerline/internal/errors"
	"github.com/ledgerline/ledgerline/internal/log"
	"github.com/ledgerline/ledgerline/internal/notify"
)

// FallbackMessage is shown when a failure carries no server-provided message
const FallbackMessage = "Something went wrong"

// AuthHeader carries the session token on every authenticated call
const AuthHeader = "X-Auth-Token"

// Client is the expense platform API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	busy       *busy.Counter
	notifier   *notify.Center
	logger     *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request; zero keeps the transport default
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithBusy wires the shared busy counter into the pipeline
func WithBusy(b *busy.Counter) Option {
	return func(c *Client) { c.busy = b }
}

// WithNotifier wires the shared notification center into the pipeline
func WithNotifier(n *notify.Center) Option {
	return func(c *Client) { c.notifier = n }
}

// WithLogger sets the structured logger
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new platform API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		busy:       busy.NewCounter(),
		notifier:   notify.NewCenter(),
		logger:     log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the session token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Busy exposes the busy counter driven by this client
func (c *Client) Busy() *busy.Counter {
	return c.busy
}

// Notifier exposes the notification center this client publishes failures to
func (c *Client) Notifier() *notify.Center {
	return c.notifier
}

// errorBody is the error shape the platform returns on non-2xx responses
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request through the pipeline: the busy counter is held for
// the full round trip, and any failure is published to the notification
// center before being returned so callers can still skip their state update.
// No retry, no deduplication; overlapping calls race and the last response
// wins.
func (c *Client) do(method, path string, body, out any) error {
	c.busy.Add()
	defer c.busy.Done()

	err := c.roundTrip(method, path, body, out)
	if err != nil {
		c.notifier.Error(userMessage(err))
		c.logger.WithError(err).Debug("request failed", "method", method, "path", path)
	}
	return err
}

func (c *Client) roundTrip(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAPIRequest, "cannot encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPIRequest, "cannot create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set(AuthHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPIUnavailable, FallbackMessage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(errors.ErrCodeAPIResponse, "cannot decode response", err)
		}
	}
	return nil
}

// statusError derives a user-facing error from a non-2xx response. The server
// message is surfaced verbatim when present; otherwise the fixed fallback.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	message := FallbackMessage
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Message != "" {
			message = eb.Message
		} else if eb.Error != "" {
			message = eb.Error
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Wrap(errors.ErrCodeAuthUnauthorized, message,
			fmt.Errorf("status %d", resp.StatusCode))
	}

	return errors.Wrap(errors.ErrCodeAPIBadStatus, message,
		fmt.Errorf("status %d", resp.StatusCode))
}

// userMessage strips the diagnostic wrapping so notifications read like the
// server wrote them.
func userMessage(err error) string {
	if le, ok := err.(*errors.LedgerError); ok && le.Message != "" {
		return le.Message
	}
	return FallbackMessage
}
