// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bureau-foundation/switchboard/lib/config"
	"github.com/bureau-foundation/switchboard/rest"
)

// NewClient reads the bot token and builds a REST client from cfg. The
// returned close function releases the token.
func NewClient(cfg *config.Config, logger *slog.Logger) (*rest.Client, func(), error) {
	token, err := cfg.LoadToken()
	if err != nil {
		return nil, nil, err
	}
	client, err := rest.NewClient(rest.ClientConfig{
		BaseURL:          cfg.API.BaseURL,
		Token:            token,
		HTTPClient:       &http.Client{Timeout: cfg.API.Timeout},
		Logger:           logger,
		CommandCacheSize: cfg.API.CommandCacheSize,
		UserAgent:        cfg.API.UserAgent,
	})
	if err != nil {
		token.Close()
		return nil, nil, fmt.Errorf("creating REST client: %w", err)
	}
	return client, func() { token.Close() }, nil
}
