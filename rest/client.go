// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

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

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bureau-foundation/switchboard/lib/clock"
	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/netutil"
	"github.com/bureau-foundation/switchboard/lib/secret"
	"github.com/bureau-foundation/switchboard/lib/version"
)

// DefaultBaseURL is the service's versioned API root.
const DefaultBaseURL = "https://discord.com/api/v10"

// DefaultCommandCacheSize is the number of command scopes cached when
// ClientConfig.CommandCacheSize is zero.
const DefaultCommandCacheSize = 64

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string
	// Token authenticates every request. Required.
	Token *secret.Token
	// HTTPClient is used for all requests. If nil, http.DefaultClient is
	// used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is
	// used.
	Logger *slog.Logger
	// Clock supplies the current time for timeout validation. If nil,
	// clock.Real() is used.
	Clock clock.Clock
	// CommandCacheSize bounds the command list cache, in scopes.
	// Negative disables the cache.
	CommandCacheSize int
	// UserAgent overrides the User-Agent header. Defaults to
	// version.UserAgent().
	UserAgent string
}

// Client is an authenticated REST client. It is safe for concurrent
// use.
type Client struct {
	baseURL    string
	token      *secret.Token
	httpClient *http.Client
	logger     *slog.Logger
	clock      clock.Clock
	userAgent  string
	commands   *lru.Cache[command.Scope, []command.Command]
}

// NewClient creates a Client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.Token == nil {
		return nil, fmt.Errorf("rest: Token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// Request URLs are built by concatenation; parse only to reject
	// malformed roots early.
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("rest: invalid BaseURL %q: %w", baseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
		clock:      clk,
		userAgent:  userAgent,
	}

	cacheSize := config.CommandCacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCommandCacheSize
	}
	if cacheSize > 0 {
		cache, err := lru.New[command.Scope, []command.Command](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("rest: creating command cache: %w", err)
		}
		client.commands = cache
	}
	return client, nil
}

// Do executes request and returns the response body of a 2xx response.
// Any other status becomes an *APIError, or a plain error when the
// response body is not a service error object.
func (c *Client) Do(ctx context.Context, request *Request) ([]byte, error) {
	if request == nil {
		return nil, fmt.Errorf("rest: nil request")
	}

	var bodyReader io.Reader
	if request.Body != nil {
		bodyReader = bytes.NewReader(request.Body)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, c.baseURL+request.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to create request: %w", err)
	}
	for name, values := range request.Header {
		for _, value := range values {
			httpRequest.Header.Add(name, value)
		}
	}
	if request.Body != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	httpRequest.Header.Set("Authorization", c.token.AuthorizationHeader())
	httpRequest.Header.Set("User-Agent", c.userAgent)

	started := c.clock.Now()
	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("rest: request to %s %s failed: %w", request.Method, request.Path, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to read response body: %w", err)
	}

	c.logger.Debug("rest request",
		"method", request.Method,
		"path", request.Path,
		"status", response.StatusCode,
		"duration", c.clock.Now().Sub(started),
	)

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	var apiErr APIError
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil || (apiErr.Code == 0 && apiErr.Message == "") {
		return nil, fmt.Errorf("rest: unexpected %d response from %s %s: %s",
			response.StatusCode, request.Method, request.Path, netutil.Truncate(responseBody))
	}
	apiErr.StatusCode = response.StatusCode
	return nil, &apiErr
}

// do executes request and decodes a JSON response into result. A nil
// result discards the body.
func (c *Client) do(ctx context.Context, request *Request, result any) error {
	body, err := c.Do(ctx, request)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("rest: failed to parse %s %s response: %w", request.Method, request.Path, err)
	}
	return nil
}
