// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package guild models guild resources returned by the REST API:
// members, roles, role permissions, welcome screens, and the guild
// snapshot stored in a guild template.
//
// [Permissions] is a 64-bit flag set that travels as a decimal string
// because its high bits exceed the integer precision of many JSON
// consumers.
package guild
