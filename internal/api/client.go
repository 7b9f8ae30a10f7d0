// Package api is the single HTTP dispatch point of the client. It attaches
// the stored access token to outgoing requests, decodes JSON responses, and
// centralizes the 401 policy: any authorization failure on an authenticated
// call invalidates the session through a registered hook. No silent
// refresh-and-retry is attempted.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/provafacil/provafacil/internal/common"
	"github.com/provafacil/provafacil/internal/logging"
	"github.com/provafacil/provafacil/internal/tokenstore"
)

// Client performs REST calls against the backend. All service-layer traffic
// goes through it.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         tokenstore.Store
	log            logging.Logger
	onUnauthorized func()
}

// New builds a Client for the given base URL. The trailing slash is trimmed
// so paths can always start with "/".
func New(baseURL string, timeout time.Duration, tokens tokenstore.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// OnUnauthorized registers the hook invoked when an authenticated call is
// rejected with 401. The session layer uses it to tear itself down.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// RequestOption tweaks a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	noAuth bool
}

// WithoutAuth marks a request as targeting an unauthenticated endpoint
// (login, register, refresh). No token is attached and a 401 maps to
// AuthenticationError instead of tearing down the session.
func WithoutAuth() RequestOption {
	return func(rc *requestConfig) { rc.noAuth = true }
}

// Get issues a GET request and decodes the JSON response into out (if
// non-nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST request with a JSON body (may be nil) and decodes the
// response into out (if non-nil).
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

// Patch issues a PATCH request with a JSON body and decodes the response
// into out (if non-nil).
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// Download issues a GET request for a binary resource and returns the body
// together with the filename suggested by the Content-Disposition header
// (empty if the server sent none).
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, &requestConfig{})
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, "", c.mapError(resp.StatusCode, payload, &requestConfig{})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &NetworkError{Err: err}
	}
	return data, dispositionFilename(resp.Header.Get("Content-Disposition")), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, rc *requestConfig) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	// Absence of a token is not an error at dispatch time; unauthenticated
	// endpoints exist.
	if !rc.noAuth {
		if token := c.tokens.Access(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	rc := &requestConfig{}
	for _, opt := range opts {
		opt(rc)
	}

	req, err := c.newRequest(ctx, method, path, body, rc)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp.StatusCode, payload, rc)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx response into the client error taxonomy.
func (c *Client) mapError(status int, payload []byte, rc *requestConfig) error {
	var pe errorPayload
	_ = json.Unmarshal(payload, &pe)
	msg := pe.Message
	if msg == "" {
		msg = pe.Error
	}

	switch {
	case status == http.StatusUnauthorized && rc.noAuth:
		return &AuthenticationError{Message: msg}

	case status == http.StatusUnauthorized:
		// The stored access token was rejected mid-session. Tear the
		// session down once and surface a terminal sentinel; callers never
		// see the raw 401.
		c.log.Warn(context.Background(), "access token rejected, invalidating session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return common.ErrSessionExpired

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		return &ValidationError{Message: msg}

	case status == http.StatusNotFound:
		if msg != "" {
			return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
		}
		return common.ErrNotFound

	case status >= 500:
		return fmt.Errorf("%w: status %d", common.ErrUnavailable, status)

	default:
		if msg != "" {
			return fmt.Errorf("unexpected status %d: %s", status, msg)
		}
		return fmt.Errorf("unexpected status %d", status)
	}
}

// dispositionFilename extracts the filename parameter from a
// Content-Disposition header value.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
