// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package syncstate

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/bureau-foundation/switchboard/lib/codec"
	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

// FormatVersion is the state file format version.
const FormatVersion = 1

// State is the record of pushed commands, keyed by scope
// (command.Scope.String()).
type State struct {
	Version int                   `cbor:"version"`
	Scopes  map[string]ScopeState `cbor:"scopes"`
}

// ScopeState records the last push to one scope.
type ScopeState struct {
	// Pushed is when the scope was last recorded.
	Pushed time.Time `cbor:"pushed"`
	// Fingerprint summarizes every entry of the scope.
	Fingerprint Fingerprint `cbor:"fingerprint"`
	// Commands maps Key(type, name) to the pushed entry.
	Commands map[string]Entry `cbor:"commands"`
}

// Entry records one pushed command.
type Entry struct {
	Name        string              `cbor:"name"`
	Kind        command.CommandType `cbor:"type"`
	Fingerprint Fingerprint         `cbor:"fingerprint"`
	// ID is the service-assigned ID, when the push response carried
	// one.
	ID *ref.CommandID `cbor:"id,omitempty"`
}

// Key returns the identity of a command within a scope: its type and
// name. An unset type is ChatInput.
func Key(kind command.CommandType, name string) string {
	if kind == 0 {
		kind = command.ChatInput
	}
	return fmt.Sprintf("%d:%s", kind, name)
}

// New returns an empty State.
func New() *State {
	return &State{Version: FormatVersion, Scopes: make(map[string]ScopeState)}
}

// Load reads the state file at path. A missing file is an empty State.
func Load(path string) (*State, error) {
	state := New()
	if err := codec.ReadFile(path, state); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("syncstate: %w", err)
	}
	if state.Version != FormatVersion {
		return nil, fmt.Errorf("syncstate: %s has format version %d, want %d", path, state.Version, FormatVersion)
	}
	if state.Scopes == nil {
		state.Scopes = make(map[string]ScopeState)
	}
	return state, nil
}

// Save writes the state to path atomically.
func (s *State) Save(path string) error {
	if err := codec.WriteFile(path, s, 0644); err != nil {
		return fmt.Errorf("syncstate: %w", err)
	}
	return nil
}

// Scope returns the recorded state of scope.
func (s *State) Scope(scope command.Scope) (ScopeState, bool) {
	recorded, ok := s.Scopes[scope.String()]
	return recorded, ok
}

// Forget drops scope from the state.
func (s *State) Forget(scope command.Scope) {
	delete(s.Scopes, scope.String())
}

// Record stores commands as the pushed state of scope at time at.
// commands is normally the service's response to the push, so that
// assigned IDs are kept.
func (s *State) Record(scope command.Scope, commands []command.Command, at time.Time) error {
	entries, err := entriesOf(commands)
	if err != nil {
		return err
	}
	keys := slices.Sorted(maps.Keys(entries))
	s.Scopes[scope.String()] = ScopeState{
		Pushed:      at.UTC(),
		Fingerprint: setFingerprint(keys, entries),
		Commands:    entries,
	}
	return nil
}

func entriesOf(commands []command.Command) (map[string]Entry, error) {
	entries := make(map[string]Entry, len(commands))
	for _, definition := range commands {
		key := Key(definition.Kind, definition.Name)
		if _, exists := entries[key]; exists {
			return nil, fmt.Errorf("syncstate: duplicate %s command %q", effectiveKind(definition.Kind), definition.Name)
		}
		fingerprint, err := FingerprintOf(definition)
		if err != nil {
			return nil, err
		}
		entry := Entry{
			Name:        definition.Name,
			Kind:        effectiveKind(definition.Kind),
			Fingerprint: fingerprint,
		}
		if !definition.ID.IsZero() {
			id := definition.ID
			entry.ID = &id
		}
		entries[key] = entry
	}
	return entries, nil
}

func effectiveKind(kind command.CommandType) command.CommandType {
	if kind == 0 {
		return command.ChatInput
	}
	return kind
}
