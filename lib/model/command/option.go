// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strconv"

	"github.com/bureau-foundation/switchboard/lib/model/channel"
)

// OptionType is the discriminant of a command option. The integer codes
// are part of the wire format.
type OptionType uint8

const (
	TypeSubCommand      OptionType = 1
	TypeSubCommandGroup OptionType = 2
	TypeString          OptionType = 3
	TypeInteger         OptionType = 4
	TypeBoolean         OptionType = 5
	TypeUser            OptionType = 6
	TypeChannel         OptionType = 7
	TypeRole            OptionType = 8
	TypeMentionable     OptionType = 9
	TypeNumber          OptionType = 10
)

// String returns the variant name ("SubCommand", "Integer", ...).
func (t OptionType) String() string {
	switch t {
	case TypeSubCommand:
		return "SubCommand"
	case TypeSubCommandGroup:
		return "SubCommandGroup"
	case TypeString:
		return "String"
	case TypeInteger:
		return "Integer"
	case TypeBoolean:
		return "Boolean"
	case TypeUser:
		return "User"
	case TypeChannel:
		return "Channel"
	case TypeRole:
		return "Role"
	case TypeMentionable:
		return "Mentionable"
	case TypeNumber:
		return "Number"
	default:
		return "OptionType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Option is one option of a command. It is a closed set: the only
// implementations are the ten variant types in this package.
type Option interface {
	// Kind returns the variant's discriminant.
	Kind() OptionType

	// IsRequired reports whether the user must supply the option.
	// Containers are never required.
	IsRequired() bool

	// IsAutocomplete reports whether the option's values come from
	// autocomplete interactions. Only String, Integer, and Number
	// options support autocomplete.
	IsAutocomplete() bool

	envelope() envelope
}

// OptionsData is the payload of the container variants.
type OptionsData struct {
	// Description must be 100 characters or less.
	Description string
	// Name must be 32 characters or less.
	Name string
	// Options are the nested options. Encoded as an array even when
	// empty.
	Options []Option
}

// ChoiceData is the payload of a String option.
type ChoiceData struct {
	Autocomplete bool
	// Choices are the predetermined values a user picks from. When
	// empty, the user types a value.
	Choices     []Choice
	Description string
	Name        string
	Required    bool
}

// NumberData is the payload of the Integer and Number options.
type NumberData struct {
	Autocomplete bool
	Choices      []Choice
	Description  string
	// MaxValue and MinValue bound the accepted value. Nil means no
	// bound.
	MaxValue *NumericValue
	MinValue *NumericValue
	Name     string
	Required bool
}

// ChannelData is the payload of a Channel option.
type ChannelData struct {
	// ChannelTypes restricts the channels a user may pick. Empty
	// means any channel kind.
	ChannelTypes []channel.Type
	Description  string
	Name         string
	Required     bool
}

// BaseData is the payload of the Boolean, User, Role, and Mentionable
// options.
type BaseData struct {
	Description string
	Name        string
	Required    bool
}

// The ten option variants.
type (
	SubCommand        OptionsData
	SubCommandGroup   OptionsData
	StringOption      ChoiceData
	IntegerOption     NumberData
	BooleanOption     BaseData
	UserOption        BaseData
	ChannelOption     ChannelData
	RoleOption        BaseData
	MentionableOption BaseData
	NumberOption      NumberData
)

func (SubCommand) Kind() OptionType        { return TypeSubCommand }
func (SubCommandGroup) Kind() OptionType   { return TypeSubCommandGroup }
func (StringOption) Kind() OptionType      { return TypeString }
func (IntegerOption) Kind() OptionType     { return TypeInteger }
func (BooleanOption) Kind() OptionType     { return TypeBoolean }
func (UserOption) Kind() OptionType        { return TypeUser }
func (ChannelOption) Kind() OptionType     { return TypeChannel }
func (RoleOption) Kind() OptionType        { return TypeRole }
func (MentionableOption) Kind() OptionType { return TypeMentionable }
func (NumberOption) Kind() OptionType      { return TypeNumber }

func (SubCommand) IsRequired() bool          { return false }
func (SubCommandGroup) IsRequired() bool     { return false }
func (o StringOption) IsRequired() bool      { return o.Required }
func (o IntegerOption) IsRequired() bool     { return o.Required }
func (o BooleanOption) IsRequired() bool     { return o.Required }
func (o UserOption) IsRequired() bool        { return o.Required }
func (o ChannelOption) IsRequired() bool     { return o.Required }
func (o RoleOption) IsRequired() bool        { return o.Required }
func (o MentionableOption) IsRequired() bool { return o.Required }
func (o NumberOption) IsRequired() bool      { return o.Required }

func (SubCommand) IsAutocomplete() bool        { return false }
func (SubCommandGroup) IsAutocomplete() bool   { return false }
func (o StringOption) IsAutocomplete() bool    { return o.Autocomplete }
func (o IntegerOption) IsAutocomplete() bool   { return o.Autocomplete }
func (BooleanOption) IsAutocomplete() bool     { return false }
func (UserOption) IsAutocomplete() bool        { return false }
func (ChannelOption) IsAutocomplete() bool     { return false }
func (RoleOption) IsAutocomplete() bool        { return false }
func (MentionableOption) IsAutocomplete() bool { return false }
func (o NumberOption) IsAutocomplete() bool    { return o.Autocomplete }

// NameOf returns the option's name regardless of variant.
func NameOf(option Option) string {
	return option.envelope().Name
}

// DescriptionOf returns the option's description regardless of variant.
func DescriptionOf(option Option) string {
	return option.envelope().Description
}

// ChildrenOf returns the nested options of a container, or nil for any
// other variant.
func ChildrenOf(option Option) []Option {
	switch o := option.(type) {
	case SubCommand:
		return o.Options
	case SubCommandGroup:
		return o.Options
	default:
		return nil
	}
}
