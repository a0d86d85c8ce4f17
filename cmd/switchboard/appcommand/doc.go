// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package appcommand implements the "switchboard commands" subtree:
// validating, rendering, planning, and syncing application command
// definition files.
//
// Definition files are JSONC: a JSON array of commands in the REST
// API's own shape, with // and /* */ comments and trailing commas
// allowed. They are decoded with the strict option codec, so a file
// that decodes here is exactly what the API would accept structurally.
// Content limits (name length, option counts) are checked separately by
// "commands validate" and before every plan and sync.
//
// Plan and sync compare definitions against the sync state file (see
// lib/syncstate) rather than the live registration, so they work
// offline and never spend API requests on an unchanged set.
package appcommand
