// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/lib/secret"
)

// EnvConfig names the environment variable holding the config path.
const EnvConfig = "SWITCHBOARD_CONFIG"

// EnvToken is the default environment variable holding the bot token.
const EnvToken = "SWITCHBOARD_TOKEN"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for a test guild and application.
	Staging Environment = "staging"
	// Production is for the live application.
	Production Environment = "production"
)

// Config is the master configuration for switchboard.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// API configures the REST client.
	API APIConfig `yaml:"api"`

	// Application identifies the bot application whose commands are
	// managed.
	Application ApplicationConfig `yaml:"application"`

	// Paths configures file locations.
	Paths PathsConfig `yaml:"paths"`

	// Token configures where the bot token is read from.
	Token TokenConfig `yaml:"token"`

	// Sync configures command synchronization.
	Sync SyncConfig `yaml:"sync"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API         *APIConfig         `yaml:"api,omitempty"`
	Application *ApplicationConfig `yaml:"application,omitempty"`
	Paths       *PathsConfig       `yaml:"paths,omitempty"`
	Token       *TokenConfig       `yaml:"token,omitempty"`
	Sync        *SyncConfig        `yaml:"sync,omitempty"`
}

// APIConfig configures the REST client.
type APIConfig struct {
	// BaseURL is the versioned API root.
	// Default: https://discord.com/api/v10
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`

	// CommandCacheSize bounds the command list cache, in scopes.
	// Negative disables the cache. Default: 64
	CommandCacheSize int `yaml:"command_cache_size"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent"`
}

// ApplicationConfig identifies the bot application.
type ApplicationConfig struct {
	// ID is the application's snowflake ID.
	ID string `yaml:"id"`

	// Guild is the default guild for guild-scoped commands. Empty
	// means commands are global unless a guild is given explicitly.
	Guild string `yaml:"guild"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// Root is the base directory for switchboard data.
	Root string `yaml:"root"`

	// State is the sync state file recording what was last pushed.
	State string `yaml:"state"`
}

// TokenConfig configures bot token sources.
type TokenConfig struct {
	// File is a file holding the token. "-" reads stdin.
	File string `yaml:"file"`

	// Env is the environment variable holding the token.
	// Default: SWITCHBOARD_TOKEN
	Env string `yaml:"env"`

	// DotEnv is a dotenv file consulted when Env is not set in the
	// process environment. Default: .env
	DotEnv string `yaml:"dotenv"`
}

// SyncConfig configures command synchronization.
type SyncConfig struct {
	// DryRun makes sync report its plan without pushing.
	// Default: false (development), true (production)
	DryRun bool `yaml:"dry_run"`

	// Prune removes commands that are registered but absent from the
	// definition file. Default: true
	Prune bool `yaml:"prune"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".cache", "switchboard")

	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL:          "https://discord.com/api/v10",
			Timeout:          30 * time.Second,
			CommandCacheSize: 64,
		},
		Paths: PathsConfig{
			Root:  defaultRoot,
			State: filepath.Join(defaultRoot, "sync-state.cbor"),
		},
		Token: TokenConfig{
			Env:    EnvToken,
			DotEnv: ".env",
		},
		Sync: SyncConfig{
			Prune: true,
		},
	}
}

// Load loads configuration from the SWITCHBOARD_CONFIG environment
// variable. If it is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvConfig)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your switchboard.yaml config file, or use --config flag", EnvConfig)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	// Apply environment-specific overrides (development/staging/production sections in the file).
	cfg.applyEnvironmentOverrides()

	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: dry-run sync unless the file says otherwise.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Sync: &SyncConfig{
					DryRun: true,
					Prune:  c.Sync.Prune,
				},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.Timeout != 0 {
			c.API.Timeout = overrides.API.Timeout
		}
		if overrides.API.CommandCacheSize != 0 {
			c.API.CommandCacheSize = overrides.API.CommandCacheSize
		}
		if overrides.API.UserAgent != "" {
			c.API.UserAgent = overrides.API.UserAgent
		}
	}

	if overrides.Application != nil {
		if overrides.Application.ID != "" {
			c.Application.ID = overrides.Application.ID
		}
		if overrides.Application.Guild != "" {
			c.Application.Guild = overrides.Application.Guild
		}
	}

	if overrides.Paths != nil {
		if overrides.Paths.Root != "" {
			c.Paths.Root = overrides.Paths.Root
		}
		if overrides.Paths.State != "" {
			c.Paths.State = overrides.Paths.State
		}
	}

	if overrides.Token != nil {
		if overrides.Token.File != "" {
			c.Token.File = overrides.Token.File
		}
		if overrides.Token.Env != "" {
			c.Token.Env = overrides.Token.Env
		}
		if overrides.Token.DotEnv != "" {
			c.Token.DotEnv = overrides.Token.DotEnv
		}
	}

	if overrides.Sync != nil {
		// Sync fields are bools, so we always apply them from overrides.
		c.Sync.DryRun = overrides.Sync.DryRun
		c.Sync.Prune = overrides.Sync.Prune
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"SWITCHBOARD_ROOT": c.Paths.Root,
		"HOME":             os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["SWITCHBOARD_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Paths.State = expandVars(c.Paths.State, vars)
	c.Token.File = expandVars(c.Token.File, vars)
	c.Token.DotEnv = expandVars(c.Token.DotEnv, vars)
	c.Application.ID = expandVars(c.Application.ID, vars)
	c.Application.Guild = expandVars(c.Application.Guild, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must not be negative"))
	}

	if c.Application.ID != "" {
		if _, err := ref.Parse[ref.ApplicationMarker](c.Application.ID); err != nil {
			errs = append(errs, fmt.Errorf("application.id: %w", err))
		}
	} else if c.Environment == Production {
		errs = append(errs, fmt.Errorf("application.id is required in production"))
	}
	if c.Application.Guild != "" {
		if _, err := ref.Parse[ref.GuildMarker](c.Application.Guild); err != nil {
			errs = append(errs, fmt.Errorf("application.guild: %w", err))
		}
	}

	if c.Paths.State == "" {
		errs = append(errs, fmt.Errorf("paths.state is required"))
	}

	if c.Token.File == "" && c.Token.Env == "" && c.Token.DotEnv == "" {
		errs = append(errs, fmt.Errorf("token: one of file, env, or dotenv is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ApplicationID parses application.id.
func (c *Config) ApplicationID() (ref.ApplicationID, error) {
	if c.Application.ID == "" {
		return ref.ApplicationID{}, fmt.Errorf("config: application.id is not set")
	}
	id, err := ref.Parse[ref.ApplicationMarker](c.Application.ID)
	if err != nil {
		return ref.ApplicationID{}, fmt.Errorf("config: application.id: %w", err)
	}
	return id, nil
}

// GuildID parses application.guild. The zero ID means no default guild.
func (c *Config) GuildID() (ref.GuildID, error) {
	if c.Application.Guild == "" {
		return ref.GuildID{}, nil
	}
	id, err := ref.Parse[ref.GuildMarker](c.Application.Guild)
	if err != nil {
		return ref.GuildID{}, fmt.Errorf("config: application.guild: %w", err)
	}
	return id, nil
}

// EnsurePaths creates the directories holding configured files.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Paths.Root,
		filepath.Dir(c.Paths.State),
	}

	for _, path := range paths {
		if path == "" || path == "." {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}

// LoadToken reads the bot token. Sources are tried in order: the token
// file, the token environment variable (which is then removed from the
// process environment), and the dotenv file. A missing dotenv file is
// not an error; finding no token anywhere is.
func (c *Config) LoadToken() (*secret.Token, error) {
	if c.Token.File != "" {
		return secret.ReadToken(c.Token.File)
	}

	if c.Token.Env != "" {
		if value, ok := os.LookupEnv(c.Token.Env); ok && value != "" {
			return secret.TokenFromEnv(c.Token.Env)
		}
	}

	if c.Token.DotEnv != "" {
		values, err := godotenv.Read(c.Token.DotEnv)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: reading %s: %w", c.Token.DotEnv, err)
		default:
			name := c.Token.Env
			if name == "" {
				name = EnvToken
			}
			if value := values[name]; value != "" {
				token, err := secret.NewToken([]byte(value))
				clear(values)
				return token, err
			}
		}
	}

	return nil, fmt.Errorf("config: no bot token found (token.file, $%s, or %s)", c.tokenEnv(), c.Token.DotEnv)
}

func (c *Config) tokenEnv() string {
	if c.Token.Env != "" {
		return c.Token.Env
	}
	return EnvToken
}
