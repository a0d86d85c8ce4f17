// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/lib/config"
	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

// ScopeFlags selects the command scope an operation applies to. The
// application and guild fall back to the configuration.
type ScopeFlags struct {
	Application string
	Guild       string
	Global      bool
}

// AddFlags registers --application, --guild, and --global.
func (f *ScopeFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Application, "application", "", "application ID (default: application.id from config)")
	flagSet.StringVar(&f.Guild, "guild", "", "guild ID for guild commands (default: application.guild from config)")
	flagSet.BoolVar(&f.Global, "global", false, "use global commands even when a default guild is configured")
}

// Resolve returns the scope named by the flags and cfg.
func (f *ScopeFlags) Resolve(cfg *config.Config) (command.Scope, error) {
	if f.Global && f.Guild != "" {
		return command.Scope{}, fmt.Errorf("--global and --guild are mutually exclusive")
	}

	var application ref.ApplicationID
	var err error
	if f.Application != "" {
		application, err = ref.Parse[ref.ApplicationMarker](f.Application)
		if err != nil {
			return command.Scope{}, fmt.Errorf("--application: %w", err)
		}
	} else {
		application, err = cfg.ApplicationID()
		if err != nil {
			return command.Scope{}, fmt.Errorf("%w (or pass --application)", err)
		}
	}

	if f.Global {
		return command.GlobalScope(application), nil
	}
	if f.Guild != "" {
		guild, err := ref.Parse[ref.GuildMarker](f.Guild)
		if err != nil {
			return command.Scope{}, fmt.Errorf("--guild: %w", err)
		}
		return command.GuildScope(application, guild), nil
	}
	guild, err := cfg.GuildID()
	if err != nil {
		return command.Scope{}, err
	}
	return command.Scope{Application: application, Guild: guild}, nil
}
