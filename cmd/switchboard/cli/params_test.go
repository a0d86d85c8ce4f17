// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

type testParams struct {
	JSONOutput
	Config  ConfigFlags
	Guild   string        `flag:"guild,g" desc:"guild ID"`
	DryRun  bool          `flag:"dry-run" desc:"report without pushing" default:"true"`
	Limit   int           `flag:"limit" desc:"maximum" default:"25"`
	User    int64         `flag:"user" desc:"user ID"`
	Timeout time.Duration `flag:"timeout" desc:"timeout" default:"30s"`
	Roles   []string      `flag:"role" desc:"role IDs"`
	Ignored string
}

func TestFlagsFromParamsDefaults(t *testing.T) {
	t.Parallel()

	var params testParams
	flagSet := FlagsFromParams("test", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.DryRun || params.Limit != 25 || params.Timeout != 30*time.Second {
		t.Errorf("defaults not applied: %+v", params)
	}
	if flagSet.Lookup("config") == nil {
		t.Error("ConfigFlags did not register --config")
	}
	if flagSet.Lookup("json") == nil {
		t.Error("embedded JSONOutput did not register --json")
	}
	if flagSet.Lookup("ignored") != nil {
		t.Error("untagged field was bound")
	}
}

func TestFlagsFromParamsParse(t *testing.T) {
	t.Parallel()

	var params testParams
	flagSet := FlagsFromParams("test", &params)
	args := []string{
		"-g", "300",
		"--dry-run=false",
		"--limit", "5",
		"--user", "12345678901234",
		"--timeout", "2m",
		"--role", "1,2", "--role", "3",
		"--json",
		"--config", "/etc/switchboard.yaml",
		"positional",
	}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Guild != "300" || params.DryRun || params.Limit != 5 || params.User != 12345678901234 {
		t.Errorf("scalar flags wrong: %+v", params)
	}
	if params.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %s", params.Timeout)
	}
	if len(params.Roles) != 3 || params.Roles[2] != "3" {
		t.Errorf("Roles = %v", params.Roles)
	}
	if !params.OutputJSON || params.Config.Path != "/etc/switchboard.yaml" {
		t.Errorf("embedded flags wrong: %+v", params)
	}
	if flagSet.Arg(0) != "positional" {
		t.Errorf("positional = %q", flagSet.Arg(0))
	}
}

func TestBindFlagsRejects(t *testing.T) {
	t.Parallel()

	if err := BindFlags(testParams{}, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("expected error for non-pointer params")
	}

	type unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	if err := BindFlags(&unsupported{}, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("expected error for unsupported field type")
	}

	type badDefault struct {
		Count int `flag:"count" default:"many"`
	}
	if err := BindFlags(&badDefault{}, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("expected error for unparseable default")
	}
}

func TestEmitJSON(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	output := JSONOutput{}
	done, err := output.EmitJSON(&buffer, []string(nil))
	if done || err != nil || buffer.Len() != 0 {
		t.Fatalf("EmitJSON without --json = (%v, %v), wrote %q", done, err, buffer.String())
	}

	output.OutputJSON = true
	done, err = output.EmitJSON(&buffer, []string(nil))
	if !done || err != nil {
		t.Fatalf("EmitJSON = (%v, %v)", done, err)
	}
	if buffer.String() != "[]\n" {
		t.Errorf("nil slice encoded as %q, want []", buffer.String())
	}
}
