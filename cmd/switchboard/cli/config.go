// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/lib/config"
)

// ConfigFlags adds --config to a command and resolves the configuration
// it names.
type ConfigFlags struct {
	Path string
}

// AddFlags registers --config.
func (f *ConfigFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Path, "config", "", "path to switchboard.yaml (default: $"+config.EnvConfig+")")
}

// Load returns the configuration named by --config, else by
// $SWITCHBOARD_CONFIG. With neither set, built-in defaults are used,
// which suffices for commands that only read local files. The result is
// validated.
func (f *ConfigFlags) Load() (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case f.Path != "":
		cfg, err = config.LoadFile(f.Path)
	case os.Getenv(config.EnvConfig) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
