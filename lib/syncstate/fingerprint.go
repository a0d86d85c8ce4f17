// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package syncstate

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

// Fingerprint is the BLAKE3-256 digest of a command's canonical
// encoding.
type Fingerprint [32]byte

// String returns the lowercase hex digest.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex characters, for display.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}

// IsZero reports whether f is the zero digest.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// Canonical returns the encoding a command is fingerprinted by: the
// command's JSON with the fields the service assigns (ID, application,
// guild, version) cleared and the fields it defaults filled in. An
// unset type is ChatInput and an unset default_permission is true.
func Canonical(definition command.Command) ([]byte, error) {
	definition.ID = ref.CommandID{}
	definition.ApplicationID = ref.ApplicationID{}
	definition.GuildID = ref.GuildID{}
	definition.Version = ref.VersionID{}
	if definition.Kind == 0 {
		definition.Kind = command.ChatInput
	}
	if definition.DefaultPermission == nil {
		enabled := true
		definition.DefaultPermission = &enabled
	}
	data, err := definition.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("syncstate: encoding command %q: %w", definition.Name, err)
	}
	return data, nil
}

// FingerprintOf hashes the canonical encoding of definition.
func FingerprintOf(definition command.Command) (Fingerprint, error) {
	data, err := Canonical(definition)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint(blake3.Sum256(data)), nil
}

// setFingerprint hashes a whole scope: each key and fingerprint in
// sorted key order.
func setFingerprint(keys []string, entries map[string]Entry) Fingerprint {
	hasher := blake3.New()
	for _, key := range keys {
		entry := entries[key]
		hasher.Write([]byte(key))
		hasher.Write([]byte{0})
		hasher.Write(entry.Fingerprint[:])
	}
	var sum Fingerprint
	copy(sum[:], hasher.Sum(nil))
	return sum
}
