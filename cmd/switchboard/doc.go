// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Switchboard is the CLI for a chat bot's REST-managed resources. It
// validates and renders application command definition files, syncs
// them to global or guild scopes with change detection against a local
// state file, and applies partial guild member updates.
package main
