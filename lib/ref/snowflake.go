// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Marker types distinguish the resource an [ID] refers to. They carry
// no data and are never instantiated.
type (
	ApplicationMarker struct{}
	ChannelMarker     struct{}
	CommandMarker     struct{}
	EmojiMarker       struct{}
	GuildMarker       struct{}
	InteractionMarker struct{}
	RoleMarker        struct{}
	UserMarker        struct{}
	VersionMarker     struct{}
	WebhookMarker     struct{}
)

// Typed identifiers for each resource kind.
type (
	ApplicationID = ID[ApplicationMarker]
	ChannelID     = ID[ChannelMarker]
	CommandID     = ID[CommandMarker]
	EmojiID       = ID[EmojiMarker]
	GuildID       = ID[GuildMarker]
	InteractionID = ID[InteractionMarker]
	RoleID        = ID[RoleMarker]
	UserID        = ID[UserMarker]
	VersionID     = ID[VersionMarker]
	WebhookID     = ID[WebhookMarker]
)

// ID is a non-zero snowflake identifier for a resource of kind M.
//
// ID is an immutable value type and is comparable, so it can be used as
// a map key. The zero value is not valid; use IsZero to check.
type ID[M any] struct {
	value uint64
}

// New wraps a raw snowflake. Returns an error if value is zero.
func New[M any](value uint64) (ID[M], error) {
	if value == 0 {
		return ID[M]{}, fmt.Errorf("snowflake must be non-zero")
	}
	return ID[M]{value: value}, nil
}

// MustNew is like New but panics on a zero value. Intended for
// constants in tests and static configuration.
func MustNew[M any](value uint64) ID[M] {
	id, err := New[M](value)
	if err != nil {
		panic("ref: " + err.Error())
	}
	return id
}

// Parse parses the decimal string form of a snowflake.
func Parse[M any](raw string) (ID[M], error) {
	if raw == "" {
		return ID[M]{}, fmt.Errorf("empty snowflake")
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return ID[M]{}, fmt.Errorf("invalid snowflake %q: %w", raw, err)
	}
	if value == 0 {
		return ID[M]{}, fmt.Errorf("invalid snowflake %q: must be non-zero", raw)
	}
	return ID[M]{value: value}, nil
}

// Get returns the raw 64-bit value.
func (id ID[M]) Get() uint64 { return id.value }

// String returns the decimal form (e.g., "300").
func (id ID[M]) String() string { return strconv.FormatUint(id.value, 10) }

// IsZero reports whether the ID is the zero value (uninitialized).
func (id ID[M]) IsZero() bool { return id.value == 0 }

// MarshalText implements encoding.TextMarshaler.
func (id ID[M]) MarshalText() ([]byte, error) {
	if id.value == 0 {
		return nil, fmt.Errorf("cannot marshal zero snowflake")
	}
	return strconv.AppendUint(nil, id.value, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[M]) UnmarshalText(data []byte) error {
	parsed, err := Parse[M](string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the ID as a JSON string.
func (id ID[M]) MarshalJSON() ([]byte, error) {
	text, err := id.MarshalText()
	if err != nil {
		return nil, err
	}
	return strconv.AppendQuote(nil, string(text)), nil
}

// UnmarshalJSON accepts either a decimal string or a bare integer.
func (id *ID[M]) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid snowflake: %w", err)
		}
		return id.UnmarshalText([]byte(raw))
	}
	return id.UnmarshalText(data)
}
