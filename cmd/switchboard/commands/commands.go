// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete switchboard CLI command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/appcommand"
	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	membercmd "github.com/bureau-foundation/switchboard/cmd/switchboard/member"
	statecmd "github.com/bureau-foundation/switchboard/cmd/switchboard/state"
	"github.com/bureau-foundation/switchboard/lib/version"
)

// Root builds and returns the complete switchboard CLI command tree.
func Root() *cli.Command {
	return newRoot(os.Stdout)
}

func newRoot(out io.Writer) *cli.Command {
	return &cli.Command{
		Name: "switchboard",
		Description: `switchboard: manage a chat bot's application commands and guild
members over the REST API.

Configuration comes from --config or $SWITCHBOARD_CONFIG (YAML). The bot
token is read from token.file, $SWITCHBOARD_TOKEN, or a .env file, and
is never written to disk by switchboard.`,
		Subcommands: []*cli.Command{
			appcommand.Command(),
			membercmd.Command(),
			statecmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					_, err := fmt.Fprintf(out, "switchboard %s\n", version.Full())
					return err
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Check a command definition file",
				Command:     "switchboard commands validate commands.jsonc",
			},
			{
				Description: "Push commands to a test guild",
				Command:     "switchboard commands sync commands.jsonc --guild 613425648685547541",
			},
			{
				Description: "Remove a member's timeout",
				Command:     "switchboard member update --user 80351110224678912 --clear-timeout",
			},
		},
	}
}
