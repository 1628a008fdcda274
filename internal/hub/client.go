// Package hub wraps the JupyterHub REST API. Every operation is a single
// request/response pair; the client owns one connection pool and translates
// HTTP outcomes into exactly two error kinds (UpstreamError, TransportError).
package hub

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/hubman-io/hubman/internal/config"
	"github.com/hubman-io/hubman/internal/models"
)

// ErrClientClosed is returned by every operation attempted after Close.
var ErrClientClosed = fmt.Errorf("hub client is closed")

// Client talks to one JupyterHub instance. It is safe for concurrent use;
// it imposes no ordering, mutual exclusion or rate limiting between calls
// sharing the pool.
type Client struct {
	rest      *resty.Client
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewClient builds a client from the immutable configuration. The
// connection pool is acquired here and released exactly once by Close.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rest := resty.New().
		SetBaseURL(cfg.GetHubAPIURL()).
		SetHeader("Accept", "application/json").
		// JupyterHub uses its own "token" authorization scheme, not Bearer.
		SetHeader("Authorization", "token "+cfg.GetHubToken()).
		SetTimeout(cfg.GetRequestTimeout())

	if !cfg.Hub.VerifySSL {
		rest.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	logrus.WithFields(logrus.Fields{
		"hub":     cfg.GetHubAPIURL(),
		"timeout": cfg.GetRequestTimeout(),
	}).Debugln("Created hub client")

	return &Client{rest: rest}, nil
}

// Close releases the client's connection pool. The client must not be used
// afterwards; further calls fail with ErrClientClosed.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.rest.GetClient().CloseIdleConnections()
	})
}

// do issues one request and normalizes the outcome. A transport failure
// (connect, TLS, timeout, cancellation) becomes a TransportError; any
// non-2xx response becomes an UpstreamError carrying the hub's detail
// message. No retries, no status-code interpretation.
func (c *Client) do(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	req := c.rest.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body).SetHeader("Content-Type", "application/json")
	}

	resp, err := executeRequest(req, method, path)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Debugln("Hub request failed before a response")
		return nil, &models.TransportError{Op: method + " " + path, Err: err}
	}

	if resp.IsError() {
		return nil, &models.UpstreamError{
			StatusCode: resp.StatusCode(),
			Detail:     extractDetail(resp.Body()),
		}
	}

	return resp, nil
}

func executeRequest(req *resty.Request, method, path string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(path)
	case http.MethodPost:
		return req.Post(path)
	case http.MethodPatch:
		return req.Patch(path)
	case http.MethodDelete:
		return req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

// extractDetail pulls the human-readable detail string out of a hub error
// body. JupyterHub uses "message"; the raw body is the fallback.
func extractDetail(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}

	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Message) > 0 {
			return parsed.Message
		}
		if len(parsed.Detail) > 0 {
			return parsed.Detail
		}
	}

	return strings.TrimSpace(string(body))
}

// requestMap issues a request whose success body is a single JSON mapping.
func (c *Client) requestMap(ctx context.Context, method, path string, body any) (map[string]any, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	if len(resp.Body()) == 0 {
		return map[string]any{}, nil
	}

	var result map[string]any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode hub response for %s %s: %w", method, path, err)
	}

	return result, nil
}

// requestList issues a request whose success body is a JSON sequence of
// mappings, in the order the hub returned them.
func (c *Client) requestList(ctx context.Context, method, path string) ([]map[string]any, error) {
	resp, err := c.do(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}

	var result []map[string]any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode hub response for %s %s: %w", method, path, err)
	}

	return result, nil
}

// requestNone issues a request whose success carries no body of interest
// (delete and stop operations).
func (c *Client) requestNone(ctx context.Context, method, path string, body any) error {
	_, err := c.do(ctx, method, path, body)
	return err
}

// requireName rejects empty resource identifiers before any request is
// built. This is the only input validation the client performs.
func requireName(kind, name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	return nil
}

func escape(name string) string {
	return url.PathEscape(name)
}
