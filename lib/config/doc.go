// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for switchboard.
//
// Configuration is loaded from a single file specified by either the
// SWITCHBOARD_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no automatic file search.
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production defaults are stricter:
// commands are never synced without an explicit application ID, and
// a dry run is the default for sync.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${SWITCHBOARD_ROOT}, and ${VAR:-default} patterns are
// expanded.
//
// The bot token is never stored in the configuration file itself.
// [Config.LoadToken] reads it from a token file, from the environment
// variable named by token.env (SWITCHBOARD_TOKEN by default), or from a
// dotenv file, in that order.
//
// Key exports:
//
//   - [Config] -- master struct with API, Application, Paths, Token
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
