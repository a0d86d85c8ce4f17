// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guild

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Permissions is a set of permission flags.
type Permissions uint64

const (
	CreateInvite            Permissions = 1 << 0
	KickMembers             Permissions = 1 << 1
	BanMembers              Permissions = 1 << 2
	Administrator           Permissions = 1 << 3
	ManageChannels          Permissions = 1 << 4
	ManageGuild             Permissions = 1 << 5
	AddReactions            Permissions = 1 << 6
	ViewAuditLog            Permissions = 1 << 7
	PrioritySpeaker         Permissions = 1 << 8
	Stream                  Permissions = 1 << 9
	ViewChannel             Permissions = 1 << 10
	SendMessages            Permissions = 1 << 11
	SendTTSMessages         Permissions = 1 << 12
	ManageMessages          Permissions = 1 << 13
	EmbedLinks              Permissions = 1 << 14
	AttachFiles             Permissions = 1 << 15
	ReadMessageHistory      Permissions = 1 << 16
	MentionEveryone         Permissions = 1 << 17
	UseExternalEmojis       Permissions = 1 << 18
	ViewGuildInsights       Permissions = 1 << 19
	Connect                 Permissions = 1 << 20
	Speak                   Permissions = 1 << 21
	MuteMembers             Permissions = 1 << 22
	DeafenMembers           Permissions = 1 << 23
	MoveMembers             Permissions = 1 << 24
	UseVAD                  Permissions = 1 << 25
	ChangeNickname          Permissions = 1 << 26
	ManageNicknames         Permissions = 1 << 27
	ManageRoles             Permissions = 1 << 28
	ManageWebhooks          Permissions = 1 << 29
	ManageEmojisAndStickers Permissions = 1 << 30
	UseSlashCommands        Permissions = 1 << 31
	RequestToSpeak          Permissions = 1 << 32
	ManageEvents            Permissions = 1 << 33
	ManageThreads           Permissions = 1 << 34
	CreatePublicThreads     Permissions = 1 << 35
	CreatePrivateThreads    Permissions = 1 << 36
	UseExternalStickers     Permissions = 1 << 37
	SendMessagesInThreads   Permissions = 1 << 38
	StartEmbeddedActivities Permissions = 1 << 39
	ModerateMembers         Permissions = 1 << 40
)

var permissionNames = []string{
	"CREATE_INVITE",
	"KICK_MEMBERS",
	"BAN_MEMBERS",
	"ADMINISTRATOR",
	"MANAGE_CHANNELS",
	"MANAGE_GUILD",
	"ADD_REACTIONS",
	"VIEW_AUDIT_LOG",
	"PRIORITY_SPEAKER",
	"STREAM",
	"VIEW_CHANNEL",
	"SEND_MESSAGES",
	"SEND_TTS_MESSAGES",
	"MANAGE_MESSAGES",
	"EMBED_LINKS",
	"ATTACH_FILES",
	"READ_MESSAGE_HISTORY",
	"MENTION_EVERYONE",
	"USE_EXTERNAL_EMOJIS",
	"VIEW_GUILD_INSIGHTS",
	"CONNECT",
	"SPEAK",
	"MUTE_MEMBERS",
	"DEAFEN_MEMBERS",
	"MOVE_MEMBERS",
	"USE_VAD",
	"CHANGE_NICKNAME",
	"MANAGE_NICKNAMES",
	"MANAGE_ROLES",
	"MANAGE_WEBHOOKS",
	"MANAGE_EMOJIS_AND_STICKERS",
	"USE_SLASH_COMMANDS",
	"REQUEST_TO_SPEAK",
	"MANAGE_EVENTS",
	"MANAGE_THREADS",
	"CREATE_PUBLIC_THREADS",
	"CREATE_PRIVATE_THREADS",
	"USE_EXTERNAL_STICKERS",
	"SEND_MESSAGES_IN_THREADS",
	"START_EMBEDDED_ACTIVITIES",
	"MODERATE_MEMBERS",
}

// Contains reports whether every flag in other is set in p.
func (p Permissions) Contains(other Permissions) bool {
	return p&other == other
}

// String lists the set flag names joined by "|". Unnamed bits are
// rendered as hexadecimal.
func (p Permissions) String() string {
	if p == 0 {
		return "NONE"
	}
	var names []string
	remaining := uint64(p)
	for remaining != 0 {
		bit := bits.TrailingZeros64(remaining)
		remaining &^= 1 << bit
		if bit < len(permissionNames) {
			names = append(names, permissionNames[bit])
		} else {
			names = append(names, fmt.Sprintf("0x%x", uint64(1)<<bit))
		}
	}
	return strings.Join(names, "|")
}

// ParsePermissions parses a "|"-separated list of flag names, as
// produced by String. Names are case-insensitive.
func ParsePermissions(text string) (Permissions, error) {
	var result Permissions
	for _, name := range strings.Split(text, "|") {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" || name == "NONE" {
			continue
		}
		index := -1
		for i, known := range permissionNames {
			if known == name {
				index = i
				break
			}
		}
		if index < 0 {
			return 0, fmt.Errorf("guild: unknown permission %q", name)
		}
		result |= 1 << index
	}
	return result, nil
}

// MarshalJSON encodes the set as a decimal string.
func (p Permissions) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatUint(uint64(p), 10)), nil
}

// UnmarshalJSON accepts a decimal string or a bare integer.
func (p *Permissions) UnmarshalJSON(data []byte) error {
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("guild: invalid permissions: %w", err)
		}
	}
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return fmt.Errorf("guild: invalid permissions %s: %w", data, err)
	}
	*p = Permissions(value)
	return nil
}
