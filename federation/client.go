// Package federation implements the HTTP transport between homeservers:
// an outbound client for user-devices queries and payload-free pokes, and
// an inbound server for the matching endpoints.
package federation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
)

// originHeader names the server a federation request comes from. Request
// signing is the deployment's concern (mTLS or a fronting proxy).
const originHeader = "X-Meridian-Origin"

const (
	defaultRetryMax  = 3
	defaultRetryWait = 500 * time.Millisecond
	defaultPokeWait  = 10 * time.Second
)

// pokeRequest is the body of a device poke. It carries no device data, only
// who is poking.
type pokeRequest struct {
	Origin string `json:"origin"`
}

// Client is the outbound federation transport.
type Client struct {
	logger     *zap.Logger
	serverName string
	scheme     string
	client     *retryablehttp.Client
}

// ClientOpt configures a Client.
type ClientOpt func(*Client)

// WithClientLogger sets the logger.
func WithClientLogger(logger *zap.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
		c.client.Logger = &retryableHTTPLogger{inner: logger}
	}
}

// WithScheme overrides the https default, for plain-http test servers.
func WithScheme(scheme string) ClientOpt {
	return func(c *Client) {
		c.scheme = scheme
	}
}

// WithRequestTimeout bounds each outbound request including retries.
func WithRequestTimeout(timeout time.Duration) ClientOpt {
	return func(c *Client) {
		c.client.HTTPClient.Timeout = timeout
	}
}

// A wrapper around zap.Logger to make it compatible with
// retryablehttp.LeveledLogger interface.
type retryableHTTPLogger struct {
	inner *zap.Logger
}

func (r retryableHTTPLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHTTPLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHTTPLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHTTPLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

// NewClient creates a Client identifying itself as serverName.
func NewClient(serverName string, opts ...ClientOpt) *Client {
	client := &retryablehttp.Client{
		RetryMax:     defaultRetryMax,
		RetryWaitMin: defaultRetryWait,
		RetryWaitMax: 2 * defaultRetryWait,
		Backoff:      retryablehttp.LinearJitterBackoff,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		HTTPClient:   &http.Client{Timeout: defaultPokeWait},
	}
	c := &Client{
		logger:     zap.NewNop(),
		serverName: serverName,
		scheme:     "https",
		client:     client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryUserDevices fetches the complete device list of user from origin.
func (c *Client) QueryUserDevices(ctx context.Context, origin string, user types.UserID) (*devices.UserDevices, error) {
	endpoint := url.URL{
		Scheme: c.scheme,
		Host:   origin,
		Path:   "/federation/v1/users/" + url.PathEscape(user.String()) + "/devices",
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating devices query: %w", err)
	}
	req.Header.Set(originHeader, c.serverName)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying %s devices of %s: %w", origin, user, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading devices response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("devices query to %s: status %s, body %s", origin, res.Status, data)
	}
	var result devices.UserDevices
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding devices response from %s: %w", origin, err)
	}
	queriesSent.Inc()
	return &result, nil
}

// SendDevicePoke signals host that device messages are waiting. Fire and
// forget: delivery runs in the background and failures are only logged, the
// poked host resyncs on its own schedule anyway.
func (c *Client) SendDevicePoke(host string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultPokeWait)
		defer cancel()
		if err := c.poke(ctx, host); err != nil {
			pokeFailures.Inc()
			c.logger.Warn("device poke failed",
				zap.String("host", host),
				zap.Error(err),
			)
			return
		}
		pokesSent.Inc()
	}()
}

func (c *Client) poke(ctx context.Context, host string) error {
	body, err := json.Marshal(pokeRequest{Origin: c.serverName})
	if err != nil {
		return fmt.Errorf("encoding poke: %w", err)
	}
	endpoint := url.URL{
		Scheme: c.scheme,
		Host:   host,
		Path:   "/federation/v1/poke",
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("creating poke: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(originHeader, c.serverName)

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", res.Status)
	}
	return nil
}
