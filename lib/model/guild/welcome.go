// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guild

import "github.com/bureau-foundation/switchboard/lib/ref"

// WelcomeScreen is shown to new members of a community guild.
type WelcomeScreen struct {
	Description     *string                `json:"description,omitempty"`
	WelcomeChannels []WelcomeScreenChannel `json:"welcome_channels"`
}

// WelcomeScreenChannel is one channel suggested on the welcome screen.
type WelcomeScreenChannel struct {
	ChannelID   ref.ChannelID `json:"channel_id"`
	Description string        `json:"description"`
	// EmojiID is set for a custom emoji, EmojiName for a unicode one.
	EmojiID   *ref.EmojiID `json:"emoji_id,omitempty"`
	EmojiName *string      `json:"emoji_name,omitempty"`
}
