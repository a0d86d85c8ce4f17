// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package appcommand

import (
	"io"
	"os"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
)

// Command returns the "commands" command group.
func Command() *cli.Command {
	return groupCommand(os.Stdout)
}

func groupCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "commands",
		Summary: "Validate, show, plan, and sync application commands",
		Description: `Manage the application commands registered for a bot.

Commands are defined in a JSONC file holding an array of command
objects. "validate" and "show" work on the file alone. "plan" compares
the file against what was last pushed (recorded in the sync state
file) and "sync" pushes it when anything changed.`,
		Subcommands: []*cli.Command{
			validateCommand(out),
			showCommand(out),
			planCommand(out),
			syncCommand(out),
		},
		Examples: []cli.Example{
			{
				Description: "Check a definition file",
				Command:     "switchboard commands validate commands.jsonc",
			},
			{
				Description: "See what a sync to the test guild would change",
				Command:     "switchboard commands plan commands.jsonc --guild 613425648685547541",
			},
			{
				Description: "Push global commands",
				Command:     "switchboard commands sync commands.jsonc --global",
			},
		},
	}
}
