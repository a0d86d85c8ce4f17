// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package member implements "switchboard member", which edits guild
// members from the command line.
//
// Member updates are partial: every field the operator does not mention
// is left alone. Fields that can be cleared (nickname, timeout, voice
// channel) take a pair of flags, one to set a value and one to clear
// it, and the request carries an explicit null only for the clearing
// flag. --dry-run prints the exact request without sending it.
package member
