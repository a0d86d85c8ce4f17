// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guild

import "github.com/bureau-foundation/switchboard/lib/ref"

// Role is a set of permissions and a display style assigned to members.
type Role struct {
	Color        uint32      `json:"color"`
	Hoist        bool        `json:"hoist"`
	Icon         *string     `json:"icon,omitempty"`
	ID           ref.RoleID  `json:"id"`
	Managed      bool        `json:"managed"`
	Mentionable  bool        `json:"mentionable"`
	Name         string      `json:"name"`
	Permissions  Permissions `json:"permissions"`
	Position     int64       `json:"position"`
	UnicodeEmoji *string     `json:"unicode_emoji,omitempty"`
}
