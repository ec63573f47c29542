// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matrixops/groupsync/lib/netutil"
)

// DefaultRequestTimeout bounds every homeserver call so a hung
// connection cannot stall the run indefinitely.
const DefaultRequestTimeout = 10 * time.Second

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// HomeserverURL is the base URL of the Matrix homeserver
	// (e.g., "https://matrix.example.org").
	HomeserverURL string
	// AccessToken authenticates every request, carried as the
	// access_token query parameter.
	AccessToken string
	// HTTPClient is used for all requests. If nil, a client with
	// RequestTimeout is constructed.
	HTTPClient *http.Client
	// RequestTimeout is the per-request timeout applied when HTTPClient
	// is nil. Zero means DefaultRequestTimeout.
	RequestTimeout time.Duration
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client is an authenticated Matrix client scoped to one homeserver and
// one access token. It is read-only after construction and safe for
// concurrent use, though groupsync itself issues calls strictly one at
// a time.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a new Matrix client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.HomeserverURL == "" {
		return nil, fmt.Errorf("matrix: HomeserverURL is required")
	}
	if config.AccessToken == "" {
		return nil, fmt.Errorf("matrix: AccessToken is required")
	}

	// Validate the URL structure. The string form (trailing slash
	// stripped) is stored and request URLs are built by concatenation,
	// which avoids double-encoding issues with url.URL.String() when
	// paths contain escaped identifiers.
	if _, err := url.Parse(config.HomeserverURL); err != nil {
		return nil, fmt.Errorf("matrix: invalid HomeserverURL %q: %w", config.HomeserverURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.RequestTimeout
		if timeout <= 0 {
			timeout = DefaultRequestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     strings.TrimRight(config.HomeserverURL, "/"),
		accessToken: config.AccessToken,
		httpClient:  httpClient,
		logger:      logger,
	}, nil
}

// doRequest performs an HTTP request to the homeserver and returns the
// response body. On 2xx, returns the body. On 4xx/5xx, returns a
// *MatrixError. The access token is appended to the query string of
// every request.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	query := url.Values{}
	query.Set("access_token", c.accessToken)
	requestURL := c.baseURL + path + "?" + query.Encode()

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("matrix: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	c.logger.Debug("matrix request", "method", method, "path", path)

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("matrix: failed to create request: %w", err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("matrix: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("matrix: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// All Matrix error responses use the same JSON shape.
	var matrixErr MatrixError
	if jsonErr := json.Unmarshal(responseBody, &matrixErr); jsonErr != nil {
		// Server returned a non-JSON error. Fail loud with the raw body.
		return nil, fmt.Errorf("matrix: unexpected %d response from %s %s: %s",
			response.StatusCode, method, path, string(responseBody))
	}
	matrixErr.StatusCode = response.StatusCode

	return nil, &matrixErr
}
