// Package backendapi provides the HTTP clients for the upstream ERP backends.
// Implements the outbound ports over JSON-over-HTTP with bearer authentication,
// a public-path allow-list for the customer-facing order endpoints, and session
// invalidation on authentication-failure responses.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"driverroutes/internal/core/ports"
	"driverroutes/internal/pkg/errs"
)

// publicPaths lists the order endpoints served without a session. Requests to
// these paths carry no bearer credential and never invalidate the session.
var publicPaths = []*regexp.Regexp{
	regexp.MustCompile(`/api/customers/.*/order-form`),
	regexp.MustCompile(`/api/customers/.*/order-exists`),
	regexp.MustCompile(`/api/customers/.*/order-confirmation`),
}

// StatusError is a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Config holds the connection settings shared by all backend clients.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

const defaultTimeout = 30 * time.Second

// client is the HTTP plumbing shared by the gateway adapters.
type client struct {
	baseURL string
	session *http.Client
	auth    ports.AuthProvider
}

func newClient(cfg Config, auth ports.AuthProvider) (*client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("cfg.BaseURL")
	}
	if auth == nil {
		return nil, errs.NewValueIsRequiredError("auth")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: &http.Client{Timeout: timeout},
		auth:    auth,
	}, nil
}

func isPublicPath(path string) bool {
	for _, pattern := range publicPaths {
		if pattern.MatchString(path) {
			return true
		}
	}
	return false
}

func (c *client) newRequest(
	ctx context.Context,
	method string,
	path string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if !isPublicPath(path) {
		if token := c.auth.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

func (c *client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusLocked:
			if !isPublicPath(req.URL.Path) {
				c.auth.Invalidate()
			}
		}

		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
