// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides switchboard's CBOR encoding configuration and
// the atomic file helpers used for on-disk state.
//
// switchboard uses two serialization formats with a clear boundary:
//
//   - JSON for the service's REST API, command definition files, and
//     CLI output.
//   - CBOR for local state files, such as the record of which command
//     definitions were last pushed to each scope.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, so an unchanged
// state file is rewritten byte-for-byte.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For files, [WriteFile] replaces the target atomically (temporary
// file, fsync, rename) and [ReadFile] reports a missing file with an
// error wrapping os.ErrNotExist.
//
// Types implementing encoding.TextMarshaler (snowflake IDs, for
// example) are encoded as CBOR text strings.
package codec
