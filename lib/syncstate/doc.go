// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package syncstate remembers which command definitions were last
// pushed to each scope, so a sync can tell what changed without asking
// the service.
//
// Each command is identified by its type and name (the service's own
// uniqueness key) and summarized by a [Fingerprint]: the BLAKE3 hash
// of its canonical JSON encoding with server-assigned fields (ID,
// application, guild, version) removed. Two definitions with the same
// fingerprint encode to the same request body.
//
// [State.Diff] compares a set of definitions against the recorded
// state and returns a [Plan]; [State.Record] stores the result of a
// successful push. The state file is CBOR written atomically by
// lib/codec.
//
// A State is not safe for concurrent use.
package syncstate
