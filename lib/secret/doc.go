// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds the bot token outside the Go heap.
//
// A [Token] is stored in an anonymous mmap region that is locked into
// RAM (mlock) and excluded from core dumps (MADV_DONTDUMP). Close zeroes
// the region before unmapping it. The garbage collector never sees the
// bytes, so no stray copy survives a heap compaction.
//
// Tokens come from a file or stdin ([ReadToken]), an environment
// variable ([TokenFromEnv], which unsets the variable after reading),
// or raw bytes ([NewToken], which zeroes the caller's slice). The only
// heap copy is the Authorization header value built per request.
package secret
