// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package syncstate

import (
	"cmp"
	"maps"
	"slices"

	"github.com/bureau-foundation/switchboard/lib/model/command"
)

// Action is what a sync does with one command.
type Action uint8

const (
	Unchanged Action = iota
	Create
	Update
	Remove
)

func (a Action) String() string {
	switch a {
	case Unchanged:
		return "unchanged"
	case Create:
		return "create"
	case Update:
		return "update"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change is one line of a Plan.
type Change struct {
	Action Action
	Key    string
	Name   string
	Kind   command.CommandType
	// Before is the recorded fingerprint; zero for Create.
	Before Fingerprint
	// After is the new fingerprint; zero for Remove.
	After Fingerprint
}

// Plan is the difference between a set of definitions and the recorded
// state of a scope. Changes are sorted by key.
type Plan struct {
	Scope   command.Scope
	Changes []Change
	// Fingerprint summarizes the new definitions.
	Fingerprint Fingerprint
	// Recorded reports whether the scope had any recorded state.
	Recorded bool
}

// Changed reports whether applying the plan would modify the scope.
func (p *Plan) Changed() bool {
	return slices.ContainsFunc(p.Changes, func(change Change) bool {
		return change.Action != Unchanged
	})
}

// Count returns the number of changes with the given action.
func (p *Plan) Count(action Action) int {
	count := 0
	for _, change := range p.Changes {
		if change.Action == action {
			count++
		}
	}
	return count
}

// Diff compares commands against the recorded state of scope.
func (s *State) Diff(scope command.Scope, commands []command.Command) (*Plan, error) {
	entries, err := entriesOf(commands)
	if err != nil {
		return nil, err
	}
	recorded, ok := s.Scope(scope)

	plan := &Plan{
		Scope:       scope,
		Fingerprint: setFingerprint(slices.Sorted(maps.Keys(entries)), entries),
		Recorded:    ok,
	}
	for key, entry := range entries {
		change := Change{Key: key, Name: entry.Name, Kind: entry.Kind, After: entry.Fingerprint}
		previous, exists := recorded.Commands[key]
		switch {
		case !exists:
			change.Action = Create
		case previous.Fingerprint != entry.Fingerprint:
			change.Action = Update
			change.Before = previous.Fingerprint
		default:
			change.Action = Unchanged
			change.Before = previous.Fingerprint
		}
		plan.Changes = append(plan.Changes, change)
	}
	for key, previous := range recorded.Commands {
		if _, exists := entries[key]; exists {
			continue
		}
		plan.Changes = append(plan.Changes, Change{
			Action: Remove,
			Key:    key,
			Name:   previous.Name,
			Kind:   previous.Kind,
			Before: previous.Fingerprint,
		})
	}
	slices.SortFunc(plan.Changes, func(a, b Change) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return plan, nil
}
