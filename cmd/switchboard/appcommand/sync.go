// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package appcommand

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/lib/syncstate"
)

type syncParams struct {
	cli.JSONOutput
	Config cli.ConfigFlags
	Scope  cli.ScopeFlags
	DryRun bool `flag:"dry-run" desc:"print the plan without pushing"`
	Apply  bool `flag:"apply"   desc:"push even when the config sets sync.dry_run"`
	Force  bool `flag:"force"   desc:"push even when the plan has no changes"`
}

// syncResult is the JSON output of "commands sync".
type syncResult struct {
	planResult
	Pushed   bool `json:"pushed"`
	Commands int  `json:"commands"`
}

func syncCommand(out io.Writer) *cli.Command {
	var params syncParams

	return &cli.Command{
		Name:    "sync",
		Summary: "Push a definition file when it differs from the last sync",
		Description: `Replace the commands registered in a scope with the contents of a
definition file, then record what was pushed in the sync state file.

Nothing is sent when the plan shows no changes (use --force to push
anyway, for example after editing commands elsewhere). With --dry-run,
or when the config sets sync.dry_run (the production default), the
plan is printed and nothing is sent; --apply overrides the config.

When the config sets sync.prune to false, commands registered in the
scope but absent from the file are fetched and pushed back unchanged
instead of being removed. Only the file's commands are recorded.`,
		Usage: "switchboard commands sync <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Push guild commands for fast iteration",
				Command:     "switchboard commands sync commands.jsonc --guild 613425648685547541",
			},
			{
				Description: "Push global commands from a production config",
				Command:     "switchboard commands sync commands.jsonc --config prod.yaml --global --apply",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sync", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			path, err := requireFile(args, "switchboard commands sync <file>")
			if err != nil {
				return err
			}

			prepared, err := preparePlan(path, &params.Config, &params.Scope)
			if err != nil {
				return err
			}
			plan := prepared.plan
			result := syncResult{planResult: planResultOf(plan), Commands: len(prepared.definitions)}

			if !plan.Changed() && !params.Force {
				if done, err := params.EmitJSON(out, result); done {
					return err
				}
				fmt.Fprintf(out, "scope %s is up to date (%s)\n", plan.Scope, plan.Fingerprint.Short())
				return nil
			}

			if params.DryRun || (prepared.cfg.Sync.DryRun && !params.Apply) {
				if done, err := params.EmitJSON(out, result); done {
					return err
				}
				writePlan(out, plan)
				fmt.Fprintln(out, "dry run: nothing pushed")
				return nil
			}

			client, closeClient, err := cli.NewClient(prepared.cfg, logger)
			if err != nil {
				return err
			}
			defer closeClient()

			payload := prepared.definitions
			managed := managedKeys(prepared.definitions)
			if !prepared.cfg.Sync.Prune {
				registered, err := client.GetCommands(ctx, prepared.scope)
				if err != nil {
					return fmt.Errorf("fetching registered commands: %w", err)
				}
				payload = mergeUnmanaged(payload, registered, managed)
			}

			registered, err := client.SetCommands(ctx, prepared.scope, payload)
			if err != nil {
				return fmt.Errorf("pushing commands to %s: %w", prepared.scope, err)
			}

			if err := prepared.state.Record(prepared.scope, withAssignedIDs(prepared.definitions, registered), time.Now()); err != nil {
				return err
			}
			if err := prepared.cfg.EnsurePaths(); err != nil {
				return err
			}
			if err := prepared.state.Save(prepared.cfg.Paths.State); err != nil {
				return err
			}

			recorded, _ := prepared.state.Scope(prepared.scope)
			logger.Info("synced commands",
				"scope", prepared.scope.String(),
				"commands", len(registered),
				"fingerprint", recorded.Fingerprint.Short(),
			)

			result.Pushed = true
			result.Commands = len(registered)
			if done, err := params.EmitJSON(out, result); done {
				return err
			}
			writePlan(out, plan)
			fmt.Fprintf(out, "pushed %d commands to %s (%s)\n", len(registered), prepared.scope, recorded.Fingerprint.Short())
			return nil
		},
	}
}

func managedKeys(definitions []command.Command) map[string]bool {
	keys := make(map[string]bool, len(definitions))
	for _, definition := range definitions {
		keys[syncstate.Key(definition.Kind, definition.Name)] = true
	}
	return keys
}

// mergeUnmanaged appends the registered commands that the definitions
// do not name.
func mergeUnmanaged(definitions, registered []command.Command, managed map[string]bool) []command.Command {
	merged := append([]command.Command(nil), definitions...)
	for _, existing := range registered {
		if !managed[syncstate.Key(existing.Kind, existing.Name)] {
			merged = append(merged, existing)
		}
	}
	return merged
}

// withAssignedIDs returns the pushed definitions, each carrying the ID
// the service assigned to the registered command of the same key.
func withAssignedIDs(definitions, registered []command.Command) []command.Command {
	ids := make(map[string]ref.CommandID, len(registered))
	for _, existing := range registered {
		ids[syncstate.Key(existing.Kind, existing.Name)] = existing.ID
	}
	pushed := make([]command.Command, len(definitions))
	for index, definition := range definitions {
		definition.ID = ids[syncstate.Key(definition.Kind, definition.Name)]
		pushed[index] = definition
	}
	return pushed
}
