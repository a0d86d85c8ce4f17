// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bureau-foundation/switchboard/lib/model/channel"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

// FollowNewsChannelRequest subscribes a channel to a news channel's
// crossposts.
type FollowNewsChannelRequest struct {
	// ChannelID is the news channel to follow.
	ChannelID ref.ChannelID
	// WebhookChannelID receives the crossposted messages.
	WebhookChannelID ref.ChannelID
}

type followNewsChannelBody struct {
	WebhookChannelID ref.ChannelID `json:"webhook_channel_id"`
}

// Validate checks the request.
func (r *FollowNewsChannelRequest) Validate() error {
	if r.ChannelID.IsZero() || r.WebhookChannelID.IsZero() {
		return fmt.Errorf("rest: channel ID and webhook channel ID are required")
	}
	return nil
}

// Build returns POST /channels/{channel}/followers.
func (r *FollowNewsChannelRequest) Build() (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return newRequest(http.MethodPost, fmt.Sprintf("/channels/%s/followers", r.ChannelID)).
		withJSON(followNewsChannelBody{WebhookChannelID: r.WebhookChannelID})
}

// FollowNewsChannel follows the news channel.
func (c *Client) FollowNewsChannel(ctx context.Context, request *FollowNewsChannelRequest) (*channel.FollowedChannel, error) {
	built, err := request.Build()
	if err != nil {
		return nil, err
	}
	var followed channel.FollowedChannel
	if err := c.do(ctx, built, &followed); err != nil {
		return nil, fmt.Errorf("rest: following channel %s: %w", request.ChannelID, err)
	}
	return &followed, nil
}

// CreateTypingTriggerRequest shows the typing indicator in a channel
// for a few seconds.
type CreateTypingTriggerRequest struct {
	ChannelID ref.ChannelID
}

// Validate checks the request.
func (r *CreateTypingTriggerRequest) Validate() error {
	if r.ChannelID.IsZero() {
		return fmt.Errorf("rest: channel ID is required")
	}
	return nil
}

// Build returns POST /channels/{channel}/typing with no body.
func (r *CreateTypingTriggerRequest) Build() (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return newRequest(http.MethodPost, fmt.Sprintf("/channels/%s/typing", r.ChannelID)), nil
}

// CreateTypingTrigger triggers the typing indicator.
func (c *Client) CreateTypingTrigger(ctx context.Context, request *CreateTypingTriggerRequest) error {
	built, err := request.Build()
	if err != nil {
		return err
	}
	if err := c.do(ctx, built, nil); err != nil {
		return fmt.Errorf("rest: triggering typing in channel %s: %w", request.ChannelID, err)
	}
	return nil
}
