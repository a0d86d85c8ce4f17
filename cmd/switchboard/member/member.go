// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package member

import (
	"io"
	"os"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/clock"
)

// Command returns the "member" command group.
func Command() *cli.Command {
	return command(os.Stdout, clock.Real())
}

func command(out io.Writer, clk clock.Clock) *cli.Command {
	return &cli.Command{
		Name:    "member",
		Summary: "Edit guild members",
		Subcommands: []*cli.Command{
			updateCommand(out, clk),
		},
	}
}
