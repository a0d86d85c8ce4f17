// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guild

import (
	"time"

	"github.com/bureau-foundation/switchboard/lib/ref"
)

// User is the account behind a guild member.
type User struct {
	Avatar        *string    `json:"avatar,omitempty"`
	Bot           bool       `json:"bot,omitempty"`
	Discriminator string     `json:"discriminator"`
	ID            ref.UserID `json:"id"`
	Username      string     `json:"username"`
}

// Member is a user's membership in a guild.
type Member struct {
	Avatar *string `json:"avatar,omitempty"`

	// CommunicationDisabledUntil is when the member's timeout ends.
	// Nil when the member is not timed out.
	CommunicationDisabledUntil *time.Time `json:"communication_disabled_until,omitempty"`

	Deaf         bool         `json:"deaf"`
	GuildID      ref.GuildID  `json:"guild_id,omitzero"`
	JoinedAt     time.Time    `json:"joined_at"`
	Mute         bool         `json:"mute"`
	Nick         *string      `json:"nick,omitempty"`
	Pending      bool         `json:"pending,omitempty"`
	PremiumSince *time.Time   `json:"premium_since,omitempty"`
	Roles        []ref.RoleID `json:"roles"`
	User         User         `json:"user"`
}

// DisplayName returns the nickname if set, otherwise the username.
func (m Member) DisplayName() string {
	if m.Nick != nil && *m.Nick != "" {
		return *m.Nick
	}
	return m.User.Username
}

// TimedOut reports whether the member's timeout is still running at now.
func (m Member) TimedOut(now time.Time) bool {
	return m.CommunicationDisabledUntil != nil && m.CommunicationDisabledUntil.After(now)
}
