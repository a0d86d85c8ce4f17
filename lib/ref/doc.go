// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed snowflake identifiers for the
// resources exposed by the chat service's REST API: applications,
// channels, commands, emojis, guilds, roles, users, command versions, and webhooks.
//
// Every identifier is an [ID] parameterized by a marker type, so a
// [GuildID] cannot be passed where a [ChannelID] is expected even though
// both wrap the same 64-bit integer. The zero value is never a valid
// snowflake; constructors reject it and [ID.IsZero] reports it.
//
// The canonical serialization form is the decimal string ("300"), which
// is what the service sends and expects. JSON decoding also accepts a
// bare integer for tolerance of older payloads. Text marshaling uses the
// same decimal form, so IDs work as CBOR text strings and map keys.
//
// This package depends on no other switchboard packages.
package ref
