// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/version"
)

// walkCommands recursively visits every command in the tree with its
// accumulated path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := append(append([]string(nil), path...), command.Name)
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}

func TestCommandTreeShape(t *testing.T) {
	t.Parallel()

	var paths []string
	walkCommands(Root(), nil, func(command *cli.Command, path []string) {
		joined := strings.Join(path, " ")
		paths = append(paths, joined)

		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing Summary", joined)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands", joined)
		}
		if command.Flags != nil {
			// Building the flag set twice must not panic or conflict.
			command.Flags()
			command.Flags()
		}
	})

	for _, want := range []string{
		"switchboard commands validate",
		"switchboard commands show",
		"switchboard commands plan",
		"switchboard commands sync",
		"switchboard member update",
		"switchboard state show",
		"switchboard state diag",
		"switchboard state forget",
		"switchboard version",
	} {
		found := false
		for _, path := range paths {
			if path == want {
				found = true
			}
		}
		if !found {
			t.Errorf("command tree lacks %q", want)
		}
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	root := newRoot(&out)
	root.Logger = slog.New(slog.DiscardHandler)
	root.HelpOutput = io.Discard
	if err := root.ExecuteContext(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if out.String() != "switchboard "+version.Full()+"\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRootHelp(t *testing.T) {
	t.Parallel()

	var help bytes.Buffer
	root := newRoot(io.Discard)
	root.HelpOutput = &help
	if err := root.ExecuteContext(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("--help: %v", err)
	}
	for _, want := range []string{"commands", "member", "state", "version", "$SWITCHBOARD_CONFIG"} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("help lacks %q:\n%s", want, help.String())
		}
	}
}
