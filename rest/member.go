// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bureau-foundation/switchboard/lib/model/guild"
	"github.com/bureau-foundation/switchboard/lib/nullable"
	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/lib/validate"
)

// UpdateGuildMemberRequest modifies a guild member. Every field is
// optional; the zero request changes nothing.
type UpdateGuildMemberRequest struct {
	GuildID ref.GuildID
	UserID  ref.UserID

	// ChannelID moves the member to a voice channel; null disconnects
	// them.
	ChannelID nullable.Field[ref.ChannelID]

	// CommunicationDisabledUntil times the member out until the given
	// time, at most 28 days ahead; null removes the timeout.
	CommunicationDisabledUntil nullable.Field[time.Time]

	// Deaf and Mute server-deafen and server-mute the member.
	Deaf *bool
	Mute *bool

	// Nick sets the nickname (1 to 32 UTF-16 code units); null resets
	// it.
	Nick nullable.Field[string]

	// Roles replaces the member's role list. Nil leaves roles
	// unchanged; an empty slice removes every role.
	Roles *[]ref.RoleID

	// Reason is recorded in the audit log.
	Reason string
}

type updateGuildMemberBody struct {
	ChannelID                  nullable.Field[ref.ChannelID] `json:"channel_id,omitzero"`
	CommunicationDisabledUntil nullable.Field[time.Time]     `json:"communication_disabled_until,omitzero"`
	Deaf                       *bool                         `json:"deaf,omitempty"`
	Mute                       *bool                         `json:"mute,omitempty"`
	Nick                       nullable.Field[string]        `json:"nick,omitzero"`
	Roles                      *[]ref.RoleID                 `json:"roles,omitempty"`
}

// Validate checks the request as of now.
func (r *UpdateGuildMemberRequest) Validate(now time.Time) error {
	var errs []error
	if r.GuildID.IsZero() {
		errs = append(errs, fmt.Errorf("rest: guild ID is required"))
	}
	if r.UserID.IsZero() {
		errs = append(errs, fmt.Errorf("rest: user ID is required"))
	}
	if nick, ok := r.Nick.Get(); ok {
		if err := validate.Nickname(nick); err != nil {
			errs = append(errs, err)
		}
	}
	if until, ok := r.CommunicationDisabledUntil.Get(); ok {
		if err := validate.CommunicationDisabledUntil(now, until); err != nil {
			errs = append(errs, err)
		}
	}
	if err := validate.AuditReason(r.Reason); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Build validates the request as of now and returns
// PATCH /guilds/{guild}/members/{user}.
func (r *UpdateGuildMemberRequest) Build(now time.Time) (*Request, error) {
	if err := r.Validate(now); err != nil {
		return nil, err
	}

	roles := r.Roles
	if roles != nil && *roles == nil {
		empty := []ref.RoleID{}
		roles = &empty
	}
	body := updateGuildMemberBody{
		ChannelID:                  r.ChannelID,
		CommunicationDisabledUntil: r.CommunicationDisabledUntil,
		Deaf:                       r.Deaf,
		Mute:                       r.Mute,
		Nick:                       r.Nick,
		Roles:                      roles,
	}

	request, err := newRequest(http.MethodPatch, fmt.Sprintf("/guilds/%s/members/%s", r.GuildID, r.UserID)).withJSON(body)
	if err != nil {
		return nil, err
	}
	return request.withReason(r.Reason)
}

// UpdateGuildMember applies request and returns the updated member.
func (c *Client) UpdateGuildMember(ctx context.Context, request *UpdateGuildMemberRequest) (*guild.Member, error) {
	built, err := request.Build(c.clock.Now())
	if err != nil {
		return nil, err
	}
	var member guild.Member
	if err := c.do(ctx, built, &member); err != nil {
		return nil, fmt.Errorf("rest: updating member %s in guild %s: %w", request.UserID, request.GuildID, err)
	}
	c.logger.Info("updated guild member",
		"guild_id", request.GuildID.String(),
		"user_id", request.UserID.String(),
	)
	return &member, nil
}
