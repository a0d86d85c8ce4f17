// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/codec"
	"github.com/bureau-foundation/switchboard/lib/syncstate"
)

// Command returns the "state" command group.
func Command() *cli.Command {
	return groupCommand(os.Stdout)
}

func groupCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "state",
		Summary: "Inspect or edit the sync state file",
		Description: `The sync state file records, per scope, the fingerprint of every
command last pushed by "switchboard commands sync". "commands plan"
compares against it. Its location is paths.state in the config.`,
		Subcommands: []*cli.Command{
			showCommand(out),
			diagCommand(out),
			forgetCommand(out),
		},
	}
}

type showParams struct {
	cli.JSONOutput
	Config cli.ConfigFlags
}

// stateResult is the JSON output of "state show".
type stateResult struct {
	Path    string        `json:"path"`
	Version int           `json:"version"`
	Scopes  []scopeResult `json:"scopes"`
}

type scopeResult struct {
	Scope       string        `json:"scope"`
	Pushed      time.Time     `json:"pushed"`
	Fingerprint string        `json:"fingerprint"`
	Commands    []entryResult `json:"commands"`
}

type entryResult struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint"`
	ID          string `json:"id,omitempty"`
}

func showCommand(out io.Writer) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "List recorded scopes and commands",
		Usage:   "switchboard state show [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			cfg, err := params.Config.Load()
			if err != nil {
				return err
			}
			state, err := syncstate.Load(cfg.Paths.State)
			if err != nil {
				return err
			}

			result := resultOf(cfg.Paths.State, state)
			if done, err := params.EmitJSON(out, result); done {
				return err
			}

			if len(result.Scopes) == 0 {
				fmt.Fprintf(out, "%s: no recorded scopes\n", result.Path)
				return nil
			}
			writer := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
			for _, scope := range result.Scopes {
				fmt.Fprintf(writer, "%s\tpushed %s\t%s\n", scope.Scope, scope.Pushed.Format(time.RFC3339), scope.Fingerprint[:12])
				for _, entry := range scope.Commands {
					id := entry.ID
					if id == "" {
						id = "-"
					}
					fmt.Fprintf(writer, "  %s\t%s\t%s\t%s\n", entry.Name, entry.Type, id, entry.Fingerprint[:12])
				}
			}
			return writer.Flush()
		},
	}
}

// resultOf lists the scopes of state in sorted order, each with its
// commands sorted by key.
func resultOf(path string, state *syncstate.State) stateResult {
	result := stateResult{Path: path, Version: state.Version, Scopes: []scopeResult{}}
	for _, name := range slices.Sorted(maps.Keys(state.Scopes)) {
		scope := state.Scopes[name]
		entry := scopeResult{
			Scope:       name,
			Pushed:      scope.Pushed,
			Fingerprint: scope.Fingerprint.String(),
			Commands:    []entryResult{},
		}
		for _, key := range slices.Sorted(maps.Keys(scope.Commands)) {
			recorded := scope.Commands[key]
			line := entryResult{
				Name:        recorded.Name,
				Type:        recorded.Kind.String(),
				Fingerprint: recorded.Fingerprint.String(),
			}
			if recorded.ID != nil {
				line.ID = recorded.ID.String()
			}
			entry.Commands = append(entry.Commands, line)
		}
		result.Scopes = append(result.Scopes, entry)
	}
	return result
}

type diagParams struct {
	Config cli.ConfigFlags
}

func diagCommand(out io.Writer) *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Print the state file in CBOR diagnostic notation",
		Description: `Print the raw state file in CBOR diagnostic notation (RFC 8949
section 8). Useful when the file fails to load.`,
		Usage: "switchboard state diag [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("diag", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			cfg, err := params.Config.Load()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(cfg.Paths.State)
			if err != nil {
				return fmt.Errorf("reading state file: %w", err)
			}
			notation, err := codec.Diagnose(data)
			if err != nil {
				return fmt.Errorf("%s: %w", cfg.Paths.State, err)
			}
			_, err = fmt.Fprintln(out, notation)
			return err
		},
	}
}

type forgetParams struct {
	Config cli.ConfigFlags
	Scope  cli.ScopeFlags
}

func forgetCommand(out io.Writer) *cli.Command {
	var params forgetParams

	return &cli.Command{
		Name:    "forget",
		Summary: "Drop a scope from the state file",
		Description: `Remove a scope's record from the state file, so that the next plan
treats every command as new and the next sync pushes unconditionally.
Does not change what is registered.`,
		Usage: "switchboard state forget [--guild <id> | --global] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("forget", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			cfg, err := params.Config.Load()
			if err != nil {
				return err
			}
			scope, err := params.Scope.Resolve(cfg)
			if err != nil {
				return err
			}
			state, err := syncstate.Load(cfg.Paths.State)
			if err != nil {
				return err
			}

			if _, ok := state.Scope(scope); !ok {
				fmt.Fprintf(out, "scope %s is not recorded\n", scope)
				return nil
			}
			state.Forget(scope)
			if err := state.Save(cfg.Paths.State); err != nil {
				return err
			}
			logger.Info("forgot scope", "scope", scope.String())
			fmt.Fprintf(out, "forgot scope %s\n", scope)
			return nil
		},
	}
}
