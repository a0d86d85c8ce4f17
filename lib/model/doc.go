// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package model is the root of the typed REST resource model. The
// resource types live in subpackages:
//
//   - [github.com/bureau-foundation/switchboard/lib/model/command] --
//     application commands and the polymorphic command option codec
//   - [github.com/bureau-foundation/switchboard/lib/model/channel] --
//     channel kinds and follow targets
//   - [github.com/bureau-foundation/switchboard/lib/model/guild] --
//     members, roles, permissions, welcome screens, templates
//   - [github.com/bureau-foundation/switchboard/lib/model/interaction] --
//     interaction payloads
package model
