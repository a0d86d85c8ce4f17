// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package state implements "switchboard state", which inspects and
// edits the sync state file written by "switchboard commands sync".
package state
