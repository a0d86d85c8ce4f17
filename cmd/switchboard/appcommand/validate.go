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
	"github.com/bureau-foundation/switchboard/lib/validate"
)

type validateParams struct {
	cli.JSONOutput
}

// validationResult is the JSON output of "commands validate".
type validationResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Commands int      `json:"commands"`
	Issues   []string `json:"issues,omitempty"`
}

func validateCommand(out io.Writer) *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check a command definition file",
		Description: `Decode a definition file and check every command against the API's
content limits: name and description lengths, option and choice
counts, required options ordered before optional ones, and numeric
bounds. Does not contact the API.

A file that fails to decode (malformed JSON, an unknown option type, a
duplicated or missing field) is reported as an error rather than as a
list of issues.`,
		Usage: "switchboard commands validate <file> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("validate", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			path, err := requireFile(args, "switchboard commands validate <file>")
			if err != nil {
				return err
			}

			definitions, err := readDefinitions(path)
			if err != nil {
				return err
			}

			issues := validate.Issues(validate.Commands(definitions))
			messages := make([]string, len(issues))
			for index, issue := range issues {
				messages[index] = issue.Error()
			}
			logger.Debug("validated definitions", "file", path, "commands", len(definitions), "issues", len(issues))

			if done, err := params.EmitJSON(out, validationResult{
				File:     path,
				Valid:    len(issues) == 0,
				Commands: len(definitions),
				Issues:   messages,
			}); done {
				return err
			}

			if len(issues) > 0 {
				for _, message := range messages {
					fmt.Fprintf(out, "  - %s\n", message)
				}
				return fmt.Errorf("%s: %d validation issue(s) found", path, len(issues))
			}

			fmt.Fprintf(out, "%s: valid (%d commands)\n", path, len(definitions))
			return nil
		},
	}
}
