// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/bureau-foundation/switchboard/lib/model/channel"
)

// envelope is the shared wire projection of every option variant.
// Pointer-to-slice members distinguish "not part of this variant"
// (nil, omitted) from "part of this variant but empty" (encoded as []).
type envelope struct {
	Autocomplete bool           `json:"autocomplete,omitzero"`
	ChannelTypes []channel.Type `json:"channel_types,omitempty"`
	Choices      *[]Choice      `json:"choices,omitzero"`
	Description  string         `json:"description"`
	MaxValue     *NumericValue  `json:"max_value,omitzero"`
	MinValue     *NumericValue  `json:"min_value,omitzero"`
	Name         string         `json:"name"`
	Options      *[]Option      `json:"options,omitzero"`
	Required     bool           `json:"required,omitzero"`
	Kind         OptionType     `json:"type"`
}

// EncodeOption encodes option as a JSON object. Encoding fails only for
// a Number bound or choice that holds an infinity or NaN.
func EncodeOption(option Option) ([]byte, error) {
	if option == nil {
		return nil, fmt.Errorf("command: cannot encode nil option")
	}
	return json.Marshal(option.envelope())
}

// EncodeOptions encodes options as a JSON array. A nil slice encodes
// as [].
func EncodeOptions(options []Option) ([]byte, error) {
	return json.Marshal(nonNilOptions(options))
}

func nonNilOptions(options []Option) []Option {
	if options == nil {
		return []Option{}
	}
	return options
}

func nonNilChoices(choices []Choice) []Choice {
	if choices == nil {
		return []Choice{}
	}
	return choices
}

func (o SubCommand) envelope() envelope {
	options := nonNilOptions(o.Options)
	return envelope{Description: o.Description, Name: o.Name, Options: &options, Kind: TypeSubCommand}
}

func (o SubCommandGroup) envelope() envelope {
	options := nonNilOptions(o.Options)
	return envelope{Description: o.Description, Name: o.Name, Options: &options, Kind: TypeSubCommandGroup}
}

func (o StringOption) envelope() envelope {
	choices := nonNilChoices(o.Choices)
	return envelope{
		Autocomplete: o.Autocomplete,
		Choices:      &choices,
		Description:  o.Description,
		Name:         o.Name,
		Required:     o.Required,
		Kind:         TypeString,
	}
}

func (o IntegerOption) envelope() envelope {
	return numberEnvelope(NumberData(o), TypeInteger)
}

func (o NumberOption) envelope() envelope {
	return numberEnvelope(NumberData(o), TypeNumber)
}

func numberEnvelope(data NumberData, kind OptionType) envelope {
	choices := nonNilChoices(data.Choices)
	return envelope{
		Autocomplete: data.Autocomplete,
		Choices:      &choices,
		Description:  data.Description,
		MaxValue:     data.MaxValue,
		MinValue:     data.MinValue,
		Name:         data.Name,
		Required:     data.Required,
		Kind:         kind,
	}
}

func (o ChannelOption) envelope() envelope {
	return envelope{
		ChannelTypes: o.ChannelTypes,
		Description:  o.Description,
		Name:         o.Name,
		Required:     o.Required,
		Kind:         TypeChannel,
	}
}

func (o BooleanOption) envelope() envelope     { return baseEnvelope(BaseData(o), TypeBoolean) }
func (o UserOption) envelope() envelope        { return baseEnvelope(BaseData(o), TypeUser) }
func (o RoleOption) envelope() envelope        { return baseEnvelope(BaseData(o), TypeRole) }
func (o MentionableOption) envelope() envelope { return baseEnvelope(BaseData(o), TypeMentionable) }

func baseEnvelope(data BaseData, kind OptionType) envelope {
	return envelope{Description: data.Description, Name: data.Name, Required: data.Required, Kind: kind}
}

func (o SubCommand) MarshalJSON() ([]byte, error)        { return EncodeOption(o) }
func (o SubCommandGroup) MarshalJSON() ([]byte, error)   { return EncodeOption(o) }
func (o StringOption) MarshalJSON() ([]byte, error)      { return EncodeOption(o) }
func (o IntegerOption) MarshalJSON() ([]byte, error)     { return EncodeOption(o) }
func (o BooleanOption) MarshalJSON() ([]byte, error)     { return EncodeOption(o) }
func (o UserOption) MarshalJSON() ([]byte, error)        { return EncodeOption(o) }
func (o ChannelOption) MarshalJSON() ([]byte, error)     { return EncodeOption(o) }
func (o RoleOption) MarshalJSON() ([]byte, error)        { return EncodeOption(o) }
func (o MentionableOption) MarshalJSON() ([]byte, error) { return EncodeOption(o) }
func (o NumberOption) MarshalJSON() ([]byte, error)      { return EncodeOption(o) }
