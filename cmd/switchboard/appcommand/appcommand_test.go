// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package appcommand

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/lib/testutil"
)

var (
	testApplication = ref.MustNew[ref.ApplicationMarker](100)
	testGuild       = ref.MustNew[ref.GuildMarker](300)
	testCommandID   = ref.MustNew[ref.CommandMarker](50)
)

const definitionsJSONC = `// Bot commands.
[
  {
    "name": "ping",
    "description": "say hi",
    "options": [
      {"type": 6, "name": "target", "description": "who"}, // optional
    ],
  },
  {
    "name": "config",
    "description": "Configure the bot",
    "options": [
      {"type": 2, "name": "limits", "description": "Rate limits", "options": [
        {"type": 1, "name": "set", "description": "Set a limit", "options": [
          {"type": 4, "name": "per_minute", "description": "Requests per minute", "required": true, "min_value": 1, "max_value": 600},
          {"type": 3, "name": "mode", "description": "Mode", "choices": [
            {"name": "Strict", "value": "strict"},
            {"name": "Lax", "value": "lax"},
          ]},
        ]},
      ]},
    ],
  },
  /* Context menu entry. */
  {"type": 2, "name": "Report user", "description": ""},
]
`

// execute runs the "commands" tree with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := groupCommand(&out)
	root.Logger = testutil.Logger(t)
	root.HelpOutput = io.Discard
	err := root.ExecuteContext(context.Background(), args)
	return out.String(), err
}

// fakeAPI is a command registry behind an httptest server. PUT replaces
// the registry, assigning IDs; GET returns it.
type fakeAPI struct {
	mu       sync.Mutex
	requests []string
	bodies   [][]byte
	commands []command.Command
	nextID   uint64
	// fillDefaults makes PUT echo default_permission on commands that
	// leave it unset.
	fillDefaults bool
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{nextID: 1000}
	server := httptest.NewServer(http.HandlerFunc(api.serve(t)))
	t.Cleanup(server.Close)
	return api, server
}

func (a *fakeAPI) serve(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()

		body, _ := io.ReadAll(request.Body)
		a.requests = append(a.requests, request.Method+" "+request.URL.Path)
		a.bodies = append(a.bodies, body)

		if got := request.Header.Get("Authorization"); got != "Bot sync-token" {
			t.Errorf("Authorization = %q", got)
		}

		switch request.Method {
		case http.MethodGet:
		case http.MethodPut:
			commands, err := command.DecodeCommands(body)
			if err != nil {
				t.Errorf("decoding PUT body: %v", err)
				writer.WriteHeader(http.StatusBadRequest)
				return
			}
			for index := range commands {
				if commands[index].ID.IsZero() {
					a.nextID++
					commands[index].ID = ref.MustNew[ref.CommandMarker](a.nextID)
				}
				commands[index].ApplicationID = ref.MustNew[ref.ApplicationMarker](100)
				commands[index].Version = ref.MustNew[ref.VersionMarker](1)
				if a.fillDefaults && commands[index].DefaultPermission == nil {
					enabled := true
					commands[index].DefaultPermission = &enabled
				}
			}
			a.commands = commands
		default:
			t.Errorf("unexpected %s %s", request.Method, request.URL.Path)
			writer.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		encoded, err := command.EncodeCommands(a.commands)
		if err != nil {
			t.Errorf("encoding registry: %v", err)
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.Write(encoded)
	}
}

func (a *fakeAPI) requestLog() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

// testConfig writes a token file and a config pointing at baseURL with
// its state file in dir. extra is appended to the YAML.
func testConfig(t *testing.T, dir, baseURL, extra string) string {
	t.Helper()
	tokenPath := testutil.WriteFile(t, dir, "token", "sync-token\n")
	return testutil.WriteFile(t, dir, "switchboard.yaml", fmt.Sprintf(`environment: development
api:
  base_url: %s
application:
  id: "100"
paths:
  root: %s
  state: %s
token:
  file: %s
%s`, baseURL, dir, filepath.Join(dir, "state", "sync-state.cbor"), tokenPath, extra))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	return -1
}
