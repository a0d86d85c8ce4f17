// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/bureau-foundation/switchboard/lib/ref"
)

// Scope identifies one set of registered commands: an application's
// global commands, or its commands in a single guild.
type Scope struct {
	Application ref.ApplicationID
	// Guild is zero for global commands.
	Guild ref.GuildID
}

// GlobalScope returns the scope of an application's global commands.
func GlobalScope(application ref.ApplicationID) Scope {
	return Scope{Application: application}
}

// GuildScope returns the scope of an application's commands in guild.
func GuildScope(application ref.ApplicationID, guild ref.GuildID) Scope {
	return Scope{Application: application, Guild: guild}
}

// IsGlobal reports whether the scope covers global commands.
func (s Scope) IsGlobal() bool {
	return s.Guild.IsZero()
}

// Path returns the REST path of the scope's command collection.
func (s Scope) Path() string {
	if s.IsGlobal() {
		return fmt.Sprintf("/applications/%s/commands", s.Application)
	}
	return fmt.Sprintf("/applications/%s/guilds/%s/commands", s.Application, s.Guild)
}

// String returns "<application>/global" or "<application>/guild/<id>".
// The form is stable and used as a key in sync state files.
func (s Scope) String() string {
	if s.IsGlobal() {
		return s.Application.String() + "/global"
	}
	return s.Application.String() + "/guild/" + s.Guild.String()
}
