// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package member

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/switchboard/lib/clock"
	"github.com/bureau-foundation/switchboard/lib/testutil"
)

// testNow is close to the real time so the REST client's own clock
// agrees with the fake one about timeout horizons.
var testNow = time.Now().UTC().Truncate(time.Second)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := command(&out, clock.Fake(testNow))
	root.Logger = testutil.Logger(t)
	root.HelpOutput = io.Discard
	err := root.ExecuteContext(context.Background(), args)
	return out.String(), err
}

// testConfig writes a config with a default guild of 300 whose API
// is baseURL.
func testConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	tokenPath := testutil.WriteFile(t, dir, "token", "member-token")
	return testutil.WriteFile(t, dir, "switchboard.yaml", fmt.Sprintf(
		"api:\n  base_url: %s\napplication:\n  guild: \"300\"\npaths:\n  state: %s\ntoken:\n  file: %s\n",
		baseURL, filepath.Join(dir, "state.cbor"), tokenPath))
}

func TestUpdateDryRunBodies(t *testing.T) {
	t.Parallel()

	configPath := testConfig(t, "http://127.0.0.1:1")
	hour := testNow.Add(time.Hour).Format(time.RFC3339)

	tests := []struct {
		name string
		args []string
		body string
	}{
		{"nothing", nil, `{}`},
		{"set nick", []string{"--nick", "Ana"}, `{"nick":"Ana"}`},
		{"clear nick", []string{"--clear-nick"}, `{"nick":null}`},
		{"relative timeout", []string{"--timeout", "1h"}, `{"communication_disabled_until":"` + hour + `"}`},
		{"absolute timeout", []string{"--timeout-until", hour}, `{"communication_disabled_until":"` + hour + `"}`},
		{"clear timeout", []string{"--clear-timeout"}, `{"communication_disabled_until":null}`},
		{"move", []string{"--channel", "55"}, `{"channel_id":"55"}`},
		{"disconnect", []string{"--disconnect"}, `{"channel_id":null}`},
		{"undeafen", []string{"--deaf=false", "--mute"}, `{"deaf":false,"mute":true}`},
		{"roles", []string{"--role", "7,8"}, `{"roles":["7","8"]}`},
		{"clear roles", []string{"--clear-roles"}, `{"roles":[]}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"update", "--config", configPath, "--user", "42", "--dry-run"}, test.args...)
			output, err := execute(t, args...)
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			want := "PATCH /guilds/300/members/42\n\n" + test.body + "\n"
			if output != want {
				t.Errorf("output = %q, want %q", output, want)
			}
		})
	}
}

func TestUpdateDryRunReason(t *testing.T) {
	t.Parallel()

	configPath := testConfig(t, "http://127.0.0.1:1")
	output, err := execute(t, "update", "--config", configPath, "--guild", "301", "--user", "42",
		"--clear-nick", "--reason", "spam cleanup", "--dry-run")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := "PATCH /guilds/301/members/42\nX-Audit-Log-Reason: spam%20cleanup\n\n{\"nick\":null}\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestUpdateRejects(t *testing.T) {
	t.Parallel()

	configPath := testConfig(t, "http://127.0.0.1:1")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing user", nil, "--user is required"},
		{"bad user", []string{"--user", "abc"}, "--user"},
		{"nick conflict", []string{"--user", "42", "--nick", "x", "--clear-nick"}, "mutually exclusive"},
		{"timeout conflict", []string{"--user", "42", "--timeout", "1h", "--clear-timeout"}, "mutually exclusive"},
		{"channel conflict", []string{"--user", "42", "--channel", "5", "--disconnect"}, "mutually exclusive"},
		{"roles conflict", []string{"--user", "42", "--role", "5", "--clear-roles"}, "mutually exclusive"},
		{"negative timeout", []string{"--user", "42", "--timeout", "-1h"}, "must be positive"},
		{"timeout too far", []string{"--user", "42", "--timeout", "700h"}, "at most"},
		{"bad timestamp", []string{"--user", "42", "--timeout-until", "tomorrow"}, "--timeout-until"},
		{"long nick", []string{"--user", "42", "--nick", strings.Repeat("n", 33)}, "got 33"},
		{"empty nick", []string{"--user", "42", "--nick="}, "got 0"},
		{"bad role", []string{"--user", "42", "--role", "0"}, "--role"},
		{"positional", []string{"--user", "42", "extra"}, "unexpected argument"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"update", "--config", configPath, "--dry-run"}, test.args...)
			_, err := execute(t, args...)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("update error = %v, want mention of %q", err, test.want)
			}
		})
	}
}

func TestUpdateRequiresGuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := testutil.WriteFile(t, dir, "switchboard.yaml", "paths:\n  state: "+filepath.Join(dir, "s.cbor")+"\n")
	_, err := execute(t, "update", "--config", configPath, "--user", "42", "--dry-run")
	if err == nil || !strings.Contains(err.Error(), "--guild is required") {
		t.Errorf("update error = %v, want missing guild", err)
	}
}

func TestUpdateSends(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotPath = request.Method + " " + request.URL.Path
		gotAuth = request.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(request.Body)
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"deaf":false,"joined_at":"2025-01-01T00:00:00Z","mute":false,"nick":"Ana","roles":["7"],"user":{"id":"42","username":"ana"}}`))
	}))
	t.Cleanup(server.Close)
	configPath := testConfig(t, server.URL)

	output, err := execute(t, "update", "--config", configPath, "--user", "42", "--nick", "Ana")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotPath != "PATCH /guilds/300/members/42" || gotAuth != "Bot member-token" || string(gotBody) != `{"nick":"Ana"}` {
		t.Errorf("request = %s auth=%q body=%s", gotPath, gotAuth, gotBody)
	}
	if output != "updated Ana (42) in guild 300\n" {
		t.Errorf("output = %q", output)
	}

	output, err = execute(t, "update", "--config", configPath, "--user", "42", "--nick", "Ana", "--json")
	if err != nil {
		t.Fatalf("update --json: %v", err)
	}
	var result memberResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("decoding %q: %v", output, err)
	}
	if result.DisplayName != "Ana" || len(result.Roles) != 1 || result.Roles[0] != "7" {
		t.Errorf("result = %+v", result)
	}
}

func TestUpdateSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		writer.Write([]byte(`{"code":10007,"message":"Unknown Member"}`))
	}))
	t.Cleanup(server.Close)

	_, err := execute(t, "update", "--config", testConfig(t, server.URL), "--user", "42", "--mute")
	if err == nil || !strings.Contains(err.Error(), "Unknown Member") {
		t.Errorf("update error = %v, want API error", err)
	}
}
