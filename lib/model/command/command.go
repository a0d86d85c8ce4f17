// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/bureau-foundation/switchboard/lib/ref"
)

// CommandType is the kind of application command.
type CommandType uint8

const (
	// ChatInput is a slash command.
	ChatInput CommandType = 1
	// User is a command in a user's context menu.
	User CommandType = 2
	// Message is a command in a message's context menu.
	Message CommandType = 3
)

func (t CommandType) String() string {
	switch t {
	case ChatInput:
		return "ChatInput"
	case User:
		return "User"
	case Message:
		return "Message"
	default:
		return "CommandType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Command is an application command as returned by and sent to the
// REST API. Server-assigned identifiers are zero on commands that have
// not been created yet and are omitted from the encoding.
type Command struct {
	ApplicationID ref.ApplicationID `json:"application_id,omitzero"`

	// DefaultPermission, when set to false, disables the command for
	// everyone until permissions are granted.
	DefaultPermission *bool `json:"default_permission,omitzero"`

	Description string        `json:"description"`
	GuildID     ref.GuildID   `json:"guild_id,omitzero"`
	ID          ref.CommandID `json:"id,omitzero"`
	Kind        CommandType   `json:"type"`
	Name        string        `json:"name"`
	Options     []Option      `json:"options"`
	Version     ref.VersionID `json:"version,omitzero"`
}

type commandWire Command

// optionUnmarshalers routes every Option the JSON decoder meets through
// the single-pass option decoder.
var optionUnmarshalers = json.WithUnmarshalers(
	json.UnmarshalFromFunc(func(decoder *jsontext.Decoder, option *Option) error {
		decoded, err := decodeOption(decoder)
		if err != nil {
			return err
		}
		*option = decoded
		return nil
	}),
)

// MarshalJSON encodes the command. Options are always an array.
func (c Command) MarshalJSON() ([]byte, error) {
	wire := commandWire(c)
	wire.Options = nonNilOptions(wire.Options)
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the command, decoding each option with the
// option codec. A null or absent options member becomes an empty slice.
func (c *Command) UnmarshalJSON(data []byte) error {
	var wire commandWire
	if err := json.Unmarshal(data, &wire, optionUnmarshalers, jsontext.AllowDuplicateNames(true)); err != nil {
		return commandDecodeError(err)
	}
	wire.Options = nonNilOptions(wire.Options)
	*c = Command(wire)
	return nil
}

// DecodeCommands decodes a JSON array of commands.
func DecodeCommands(data []byte) ([]Command, error) {
	var commands []Command
	if err := json.Unmarshal(data, &commands, optionUnmarshalers, jsontext.AllowDuplicateNames(true)); err != nil {
		return nil, commandDecodeError(err)
	}
	if commands == nil {
		commands = []Command{}
	}
	return commands, nil
}

// commandDecodeError returns the option decoder's *DecodeError when err
// carries one, and err with the package prefix otherwise.
func commandDecodeError(err error) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr
	}
	return fmt.Errorf("command: %w", err)
}

// EncodeCommands encodes commands as a JSON array. A nil slice encodes
// as [].
func EncodeCommands(commands []Command) ([]byte, error) {
	if commands == nil {
		commands = []Command{}
	}
	return json.Marshal(commands)
}
