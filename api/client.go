package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client wraps every call to the shop's REST API. It injects the bearer token
// of the current session and reports 401 replies back so the session can be
// torn down. Requests are never retried.
type Client struct {
	http           *resty.Client
	log            *zap.Logger
	tokenFn        func() string
	onUnauthorized func()
}

type Option func(*Client)

// WithTokenProvider supplies the bearer token attached to every request.
// An empty token means the request goes out unauthenticated.
func WithTokenProvider(fn func() string) Option {
	return func(c *Client) { c.tokenFn = fn }
}

// OnUnauthorized is invoked whenever the API answers 401, except for login
// and registration, which are expected to fail that way on bad credentials.
func OnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, timeout time.Duration, log *zap.Logger, opts ...Option) *Client {
	c := &Client{log: log}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if c.tokenFn != nil {
			if token := c.tokenFn(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
		}
		return nil
	})

	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.Debug("shop api call",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()))

		if resp.StatusCode() == http.StatusUnauthorized &&
			c.onUnauthorized != nil && !credentialCall(resp.Request) {
			c.onUnauthorized()
		}
		return nil
	})

	return c
}

// credentialCall reports whether the request carried credentials rather than
// a token, so a 401 means "wrong password" and must not clear the session.
// By response time resty has resolved req.URL against the base URL.
func credentialCall(req *resty.Request) bool {
	if req.Method != http.MethodPost {
		return false
	}
	return strings.HasSuffix(req.URL, "/api/auth/login") ||
		strings.HasSuffix(req.URL, "/api/users")
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	return c.finish("GET", path, resp, err, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	return c.finish("POST", path, resp, err, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Put(path)
	return c.finish("PUT", path, resp, err, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(path)
	return c.finish("DELETE", path, resp, err, nil)
}

// finish turns a resty response into either a typed API error or a decoded
// body. Decoding is done by hand because the backend occasionally serves
// JSON with a text/plain content type (the login endpoint does).
func (c *Client) finish(method, path string, resp *resty.Response, err error, out any) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newError(resp)
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: unexpected response shape: %w", method, path, err)
	}
	return nil
}
