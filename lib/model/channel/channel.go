// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package channel defines channel kinds and the channel follow result.
package channel

import (
	"fmt"
	"strconv"

	"github.com/bureau-foundation/switchboard/lib/ref"
)

// Type is the kind of a channel. It is encoded as its integer code.
// Codes this package does not name are preserved as-is so that newer
// channel kinds round-trip unchanged.
type Type uint8

const (
	GuildText          Type = 0
	Private            Type = 1
	GuildVoice         Type = 2
	Group              Type = 3
	GuildCategory      Type = 4
	GuildNews          Type = 5
	GuildStore         Type = 6
	GuildNewsThread    Type = 10
	GuildPublicThread  Type = 11
	GuildPrivateThread Type = 12
	GuildStageVoice    Type = 13
)

var typeNames = map[Type]string{
	GuildText:          "GuildText",
	Private:            "Private",
	GuildVoice:         "GuildVoice",
	Group:              "Group",
	GuildCategory:      "GuildCategory",
	GuildNews:          "GuildNews",
	GuildStore:         "GuildStore",
	GuildNewsThread:    "GuildNewsThread",
	GuildPublicThread:  "GuildPublicThread",
	GuildPrivateThread: "GuildPrivateThread",
	GuildStageVoice:    "GuildStageVoice",
}

// String returns the kind's name, or "Unknown(n)" for unnamed codes.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown(" + strconv.Itoa(int(t)) + ")"
}

// IsKnown reports whether t is one of the named channel kinds.
func (t Type) IsKnown() bool {
	_, ok := typeNames[t]
	return ok
}

// IsThread reports whether t is one of the thread kinds.
func (t Type) IsThread() bool {
	return t == GuildNewsThread || t == GuildPublicThread || t == GuildPrivateThread
}

// MarshalJSON encodes the integer code. Defined explicitly so that
// []Type encodes as an array of integers rather than as a byte string.
func (t Type) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(t), 10), nil
}

// UnmarshalJSON decodes an integer code in the range 0-255.
func (t *Type) UnmarshalJSON(data []byte) error {
	code, err := strconv.ParseUint(string(data), 10, 8)
	if err != nil {
		return fmt.Errorf("channel type must be an integer 0-255, got %s", data)
	}
	*t = Type(code)
	return nil
}

// FollowedChannel is the response to following a news channel: the
// source channel and the webhook created in the target channel.
type FollowedChannel struct {
	ChannelID ref.ChannelID `json:"channel_id"`
	WebhookID ref.WebhookID `json:"webhook_id"`
}
