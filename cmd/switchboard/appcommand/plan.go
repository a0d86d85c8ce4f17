// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package appcommand

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/config"
	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/syncstate"
)

type planParams struct {
	cli.JSONOutput
	Config cli.ConfigFlags
	Scope  cli.ScopeFlags
}

// planResult is the JSON output of "commands plan" and of a "commands
// sync" that did not push.
type planResult struct {
	Scope       string         `json:"scope"`
	Changed     bool           `json:"changed"`
	Recorded    bool           `json:"recorded"`
	Fingerprint string         `json:"fingerprint"`
	Changes     []changeResult `json:"changes"`
}

type changeResult struct {
	Action string `json:"action"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// planned is the shared setup of plan and sync.
type planned struct {
	cfg         *config.Config
	scope       command.Scope
	definitions []command.Command
	state       *syncstate.State
	plan        *syncstate.Plan
}

func planCommand(out io.Writer) *cli.Command {
	var params planParams

	return &cli.Command{
		Name:    "plan",
		Summary: "Show what a sync would change",
		Description: `Compare a definition file against the commands last pushed to a
scope, as recorded in the sync state file. Each command is listed as
created (+), updated (~), removed (-), or unchanged.

Exits 0 when nothing would change and 2 when a sync would push, so
scripts can detect drift without parsing output. Does not contact the
API.`,
		Usage: "switchboard commands plan <file> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("plan", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			path, err := requireFile(args, "switchboard commands plan <file>")
			if err != nil {
				return err
			}

			result, err := preparePlan(path, &params.Config, &params.Scope)
			if err != nil {
				return err
			}
			logger.Debug("planned sync",
				"scope", result.scope.String(),
				"changed", result.plan.Changed(),
				"fingerprint", result.plan.Fingerprint.Short(),
			)

			if done, err := params.EmitJSON(out, planResultOf(result.plan)); done {
				if err != nil {
					return err
				}
				return exitForPlan(result.plan)
			}

			writePlan(out, result.plan)
			return exitForPlan(result.plan)
		},
	}
}

// preparePlan loads configuration, definitions, and state, and diffs
// them.
func preparePlan(path string, configFlags *cli.ConfigFlags, scopeFlags *cli.ScopeFlags) (*planned, error) {
	cfg, err := configFlags.Load()
	if err != nil {
		return nil, err
	}
	scope, err := scopeFlags.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	definitions, err := readValidDefinitions(path)
	if err != nil {
		return nil, err
	}

	state, err := syncstate.Load(cfg.Paths.State)
	if err != nil {
		return nil, err
	}
	plan, err := state.Diff(scope, definitions)
	if err != nil {
		return nil, err
	}

	return &planned{
		cfg:         cfg,
		scope:       scope,
		definitions: definitions,
		state:       state,
		plan:        plan,
	}, nil
}

func exitForPlan(plan *syncstate.Plan) error {
	if plan.Changed() {
		return &cli.ExitError{Code: 2}
	}
	return nil
}

func planResultOf(plan *syncstate.Plan) planResult {
	result := planResult{
		Scope:       plan.Scope.String(),
		Changed:     plan.Changed(),
		Recorded:    plan.Recorded,
		Fingerprint: plan.Fingerprint.String(),
		Changes:     make([]changeResult, len(plan.Changes)),
	}
	for index, change := range plan.Changes {
		entry := changeResult{
			Action: change.Action.String(),
			Name:   change.Name,
			Type:   change.Kind.String(),
		}
		if !change.Before.IsZero() {
			entry.Before = change.Before.String()
		}
		if !change.After.IsZero() {
			entry.After = change.After.String()
		}
		result.Changes[index] = entry
	}
	return result
}

var actionMarks = map[syncstate.Action]string{
	syncstate.Unchanged: " ",
	syncstate.Create:    "+",
	syncstate.Update:    "~",
	syncstate.Remove:    "-",
}

func writePlan(out io.Writer, plan *syncstate.Plan) {
	fmt.Fprintf(out, "scope %s", plan.Scope)
	if !plan.Recorded {
		fmt.Fprint(out, " (never synced)")
	}
	fmt.Fprintln(out)

	for _, change := range plan.Changes {
		name := change.Name
		if change.Kind == command.ChatInput {
			name = "/" + name
		} else {
			name += " (" + change.Kind.String() + ")"
		}
		fmt.Fprintf(out, "  %s %s\n", actionMarks[change.Action], name)
	}

	fmt.Fprintf(out, "%d to create, %d to update, %d to remove, %d unchanged\n",
		plan.Count(syncstate.Create),
		plan.Count(syncstate.Update),
		plan.Count(syncstate.Remove),
		plan.Count(syncstate.Unchanged),
	)
}
