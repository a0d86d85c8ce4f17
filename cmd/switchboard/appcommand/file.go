// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package appcommand

import (
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/validate"
)

// readDefinitions reads a JSONC definition file. Comments and trailing
// commas are stripped before decoding.
func readDefinitions(path string) ([]command.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	definitions, err := command.DecodeCommands(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return definitions, nil
}

// readValidDefinitions reads a definition file and rejects it when any
// definition fails validation.
func readValidDefinitions(path string) ([]command.Command, error) {
	definitions, err := readDefinitions(path)
	if err != nil {
		return nil, err
	}
	if issues := validate.Issues(validate.Commands(definitions)); len(issues) > 0 {
		return nil, fmt.Errorf("%s: %d validation issue(s) found (run 'switchboard commands validate %s')",
			path, len(issues), path)
	}
	return definitions, nil
}

// requireFile checks that args holds exactly the definition file path.
func requireFile(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return args[0], nil
}
