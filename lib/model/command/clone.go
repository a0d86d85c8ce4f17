// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import "slices"

// Clone returns a deep copy of c. Mutating the copy's options, choices,
// bounds, or default permission never affects c.
func (c Command) Clone() Command {
	if c.DefaultPermission != nil {
		permission := *c.DefaultPermission
		c.DefaultPermission = &permission
	}
	c.Options = cloneOptions(c.Options)
	return c
}

// CloneCommands deep-copies every command in commands. A nil slice
// stays nil.
func CloneCommands(commands []Command) []Command {
	if commands == nil {
		return nil
	}
	cloned := make([]Command, len(commands))
	for index, definition := range commands {
		cloned[index] = definition.Clone()
	}
	return cloned
}

// CloneOption returns a deep copy of option.
func CloneOption(option Option) Option {
	switch o := option.(type) {
	case SubCommand:
		o.Options = cloneOptions(o.Options)
		return o
	case SubCommandGroup:
		o.Options = cloneOptions(o.Options)
		return o
	case StringOption:
		o.Choices = slices.Clone(o.Choices)
		return o
	case IntegerOption:
		o.Choices = slices.Clone(o.Choices)
		o.MaxValue = cloneBound(o.MaxValue)
		o.MinValue = cloneBound(o.MinValue)
		return o
	case NumberOption:
		o.Choices = slices.Clone(o.Choices)
		o.MaxValue = cloneBound(o.MaxValue)
		o.MinValue = cloneBound(o.MinValue)
		return o
	case ChannelOption:
		o.ChannelTypes = slices.Clone(o.ChannelTypes)
		return o
	default:
		return option
	}
}

func cloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	cloned := make([]Option, len(options))
	for index, option := range options {
		cloned[index] = CloneOption(option)
	}
	return cloned
}

func cloneBound(bound *NumericValue) *NumericValue {
	if bound == nil {
		return nil
	}
	value := *bound
	return &value
}
