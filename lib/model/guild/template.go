// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guild

import (
	"github.com/bureau-foundation/switchboard/lib/model/channel"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

// TemplateGuild is the guild snapshot stored in a guild template.
// Channel and role identifiers inside a template are small placeholder
// integers rather than snowflakes.
type TemplateGuild struct {
	AFKChannelID                *ref.ChannelID    `json:"afk_channel_id"`
	AFKTimeout                  uint64            `json:"afk_timeout"`
	Channels                    []TemplateChannel `json:"channels"`
	DefaultMessageNotifications uint8             `json:"default_message_notifications"`
	Description                 *string           `json:"description"`
	ExplicitContentFilter       uint8             `json:"explicit_content_filter"`
	IconHash                    *string           `json:"icon_hash"`
	Name                        string            `json:"name"`
	PreferredLocale             string            `json:"preferred_locale"`
	Roles                       []TemplateRole    `json:"roles"`
	SystemChannelFlags          uint64            `json:"system_channel_flags"`
	SystemChannelID             *ref.ChannelID    `json:"system_channel_id"`
	VerificationLevel           uint8             `json:"verification_level"`
}

// TemplateChannel is a channel inside a template.
type TemplateChannel struct {
	ID       uint64       `json:"id"`
	Kind     channel.Type `json:"type"`
	Name     string       `json:"name"`
	NSFW     bool         `json:"nsfw,omitempty"`
	ParentID *uint64      `json:"parent_id"`
	Position int64        `json:"position"`
	Topic    *string      `json:"topic,omitempty"`
}

// TemplateRole is a role inside a template.
type TemplateRole struct {
	Color       uint32      `json:"color"`
	Hoist       bool        `json:"hoist"`
	ID          uint64      `json:"id"`
	Mentionable bool        `json:"mentionable"`
	Name        string      `json:"name"`
	Permissions Permissions `json:"permissions"`
}

// ChannelsByParent groups the template's channels by parent category.
// Top-level channels are under key 0.
func (g TemplateGuild) ChannelsByParent() map[uint64][]TemplateChannel {
	grouped := make(map[uint64][]TemplateChannel)
	for _, c := range g.Channels {
		var parent uint64
		if c.ParentID != nil {
			parent = *c.ParentID
		}
		grouped[parent] = append(grouped[parent], c)
	}
	return grouped
}
