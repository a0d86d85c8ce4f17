// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package interaction models interactions delivered to an application.
package interaction

import (
	"strconv"

	"github.com/bureau-foundation/switchboard/lib/ref"
)

// Type is the kind of an interaction.
type Type uint8

const (
	TypePing                           Type = 1
	TypeApplicationCommand             Type = 2
	TypeMessageComponent               Type = 3
	TypeApplicationCommandAutocomplete Type = 4
	TypeModalSubmit                    Type = 5
)

func (t Type) String() string {
	switch t {
	case TypePing:
		return "Ping"
	case TypeApplicationCommand:
		return "ApplicationCommand"
	case TypeMessageComponent:
		return "MessageComponent"
	case TypeApplicationCommandAutocomplete:
		return "ApplicationCommandAutocomplete"
	case TypeModalSubmit:
		return "ModalSubmit"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Ping is the interaction the service sends to verify an interactions
// endpoint. The endpoint answers with a Pong response.
type Ping struct {
	ApplicationID ref.ApplicationID `json:"application_id"`
	ID            ref.InteractionID `json:"id"`
	Kind          Type              `json:"type"`
	Token         string            `json:"token"`
}

// NewPing returns a Ping with Kind set to TypePing.
func NewPing(application ref.ApplicationID, id ref.InteractionID, token string) Ping {
	return Ping{ApplicationID: application, ID: id, Kind: TypePing, Token: token}
}

// Response is the reply to an interaction.
type Response struct {
	Kind ResponseType `json:"type"`
}

// ResponseType is the kind of an interaction response.
type ResponseType uint8

// Pong acknowledges a Ping.
const Pong ResponseType = 1

// Acknowledge returns the response to p.
func (p Ping) Acknowledge() Response {
	return Response{Kind: Pong}
}
