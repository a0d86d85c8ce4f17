// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bureau-foundation/switchboard/lib/model/guild"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

// UpdateWelcomeScreenRequest modifies a guild's welcome screen.
type UpdateWelcomeScreenRequest struct {
	GuildID ref.GuildID

	Description *string
	Enabled     *bool
	// WelcomeChannels replaces the suggested channels. Empty leaves
	// them unchanged.
	WelcomeChannels []guild.WelcomeScreenChannel
}

type updateWelcomeScreenBody struct {
	Description     *string                      `json:"description,omitempty"`
	Enabled         *bool                        `json:"enabled,omitempty"`
	WelcomeChannels []guild.WelcomeScreenChannel `json:"welcome_channels,omitempty"`
}

// Validate checks the request.
func (r *UpdateWelcomeScreenRequest) Validate() error {
	if r.GuildID.IsZero() {
		return fmt.Errorf("rest: guild ID is required")
	}
	for index, welcomeChannel := range r.WelcomeChannels {
		if welcomeChannel.ChannelID.IsZero() {
			return fmt.Errorf("rest: welcome_channels[%d]: channel ID is required", index)
		}
	}
	return nil
}

// Build returns PATCH /guilds/{guild}/welcome-screen.
func (r *UpdateWelcomeScreenRequest) Build() (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return newRequest(http.MethodPatch, fmt.Sprintf("/guilds/%s/welcome-screen", r.GuildID)).withJSON(updateWelcomeScreenBody{
		Description:     r.Description,
		Enabled:         r.Enabled,
		WelcomeChannels: r.WelcomeChannels,
	})
}

// UpdateWelcomeScreen applies request and returns the resulting screen.
func (c *Client) UpdateWelcomeScreen(ctx context.Context, request *UpdateWelcomeScreenRequest) (*guild.WelcomeScreen, error) {
	built, err := request.Build()
	if err != nil {
		return nil, err
	}
	var screen guild.WelcomeScreen
	if err := c.do(ctx, built, &screen); err != nil {
		return nil, fmt.Errorf("rest: updating welcome screen of guild %s: %w", request.GuildID, err)
	}
	return &screen, nil
}
