// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bureau-foundation/switchboard/lib/model/command"
)

const (
	// NameMaxLength bounds command and option names, in characters.
	NameMaxLength = 32

	// DescriptionMaxLength bounds command and option descriptions, in
	// characters.
	DescriptionMaxLength = 100

	// ChoiceNameMaxLength bounds the display name of a choice.
	ChoiceNameMaxLength = 100

	// MaxOptions is the most options a command or container may hold.
	MaxOptions = 25

	// MaxChoices is the most choices an option may offer.
	MaxChoices = 25

	// MaxCommands is the most commands of one type per scope.
	MaxCommands = 100
)

// Commands validates a full set of command definitions for one scope:
// each command individually, unique names per command type, and the
// per-type count limit.
func Commands(commands []command.Command) error {
	var errs []error
	seen := make(map[command.CommandType]map[string]int)
	counts := make(map[command.CommandType]int)
	for index, definition := range commands {
		path := fmt.Sprintf("commands[%d]", index)
		if err := commandAt(definition, path); err != nil {
			errs = append(errs, err)
		}

		kind := effectiveType(definition.Kind)
		counts[kind]++
		if seen[kind] == nil {
			seen[kind] = make(map[string]int)
		}
		if first, exists := seen[kind][definition.Name]; exists {
			errs = append(errs, newError(KindCommandName, path,
				"duplicate %s command name %q (first used at commands[%d])", kind, definition.Name, first))
		} else {
			seen[kind][definition.Name] = index
		}
	}
	for kind, count := range counts {
		if count > MaxCommands {
			errs = append(errs, newError(KindCommandCount, "",
				"at most %d %s commands are allowed, got %d", MaxCommands, kind, count))
		}
	}
	return errors.Join(errs...)
}

// Command validates one command definition.
func Command(definition command.Command) error {
	return commandAt(definition, "")
}

func commandAt(definition command.Command, path string) error {
	var errs []error
	kind := effectiveType(definition.Kind)

	nameLength := utf8.RuneCountInString(definition.Name)
	if nameLength < 1 || nameLength > NameMaxLength {
		errs = append(errs, newError(KindCommandName, path,
			"command name must be 1 to %d characters, got %d", NameMaxLength, nameLength))
	}

	descriptionLength := utf8.RuneCountInString(definition.Description)
	switch kind {
	case command.ChatInput:
		if descriptionLength < 1 || descriptionLength > DescriptionMaxLength {
			errs = append(errs, newError(KindCommandDescription, path,
				"command description must be 1 to %d characters, got %d", DescriptionMaxLength, descriptionLength))
		}
		errs = append(errs, options(definition.Options, join(path, "options"))...)
	default:
		if descriptionLength != 0 {
			errs = append(errs, newError(KindCommandDescription, path,
				"%s commands must have an empty description", kind))
		}
		if len(definition.Options) != 0 {
			errs = append(errs, newError(KindOptionCount, path,
				"%s commands cannot have options", kind))
		}
	}
	return errors.Join(errs...)
}

// Option validates a single option and everything nested under it.
func Option(option command.Option) error {
	return errors.Join(optionAt(option, "")...)
}

func options(list []command.Option, path string) []error {
	var errs []error
	if len(list) > MaxOptions {
		errs = append(errs, newError(KindOptionCount, path,
			"at most %d options are allowed, got %d", MaxOptions, len(list)))
	}

	names := make(map[string]int, len(list))
	sawOptional := false
	for index, option := range list {
		optionPath := fmt.Sprintf("%s[%d]", path, index)
		errs = append(errs, optionAt(option, optionPath)...)

		name := command.NameOf(option)
		if first, exists := names[name]; exists {
			errs = append(errs, newError(KindOptionName, optionPath,
				"duplicate option name %q (first used at %s[%d])", name, path, first))
		} else {
			names[name] = index
		}

		switch option.Kind() {
		case command.TypeSubCommand, command.TypeSubCommandGroup:
		default:
			if option.IsRequired() && sawOptional {
				errs = append(errs, newError(KindOptionOrder, optionPath,
					"required option %q follows an optional option", name))
			}
			if !option.IsRequired() {
				sawOptional = true
			}
		}
	}
	return errs
}

func optionAt(option command.Option, path string) []error {
	var errs []error

	name := command.NameOf(option)
	nameLength := utf8.RuneCountInString(name)
	if nameLength < 1 || nameLength > NameMaxLength {
		errs = append(errs, newError(KindOptionName, path,
			"option name must be 1 to %d characters, got %d", NameMaxLength, nameLength))
	}
	descriptionLength := utf8.RuneCountInString(command.DescriptionOf(option))
	if descriptionLength < 1 || descriptionLength > DescriptionMaxLength {
		errs = append(errs, newError(KindOptionDescription, path,
			"option description must be 1 to %d characters, got %d", DescriptionMaxLength, descriptionLength))
	}

	switch o := option.(type) {
	case command.SubCommand:
		errs = append(errs, options(o.Options, join(path, "options"))...)
		for index, child := range o.Options {
			if kind := child.Kind(); kind == command.TypeSubCommand || kind == command.TypeSubCommandGroup {
				errs = append(errs, newError(KindOptionOrder, fmt.Sprintf("%s[%d]", join(path, "options"), index),
					"a subcommand cannot contain a %s", kind))
			}
		}
	case command.SubCommandGroup:
		errs = append(errs, options(o.Options, join(path, "options"))...)
		for index, child := range o.Options {
			if child.Kind() != command.TypeSubCommand {
				errs = append(errs, newError(KindOptionOrder, fmt.Sprintf("%s[%d]", join(path, "options"), index),
					"a subcommand group may only contain subcommands, got %s", child.Kind()))
			}
		}
	case command.StringOption:
		errs = append(errs, choices(o.Choices, o.Autocomplete, path)...)
	case command.IntegerOption:
		errs = append(errs, choices(o.Choices, o.Autocomplete, path)...)
		errs = append(errs, bounds(o.MinValue, o.MaxValue, path)...)
	case command.NumberOption:
		errs = append(errs, choices(o.Choices, o.Autocomplete, path)...)
		errs = append(errs, bounds(o.MinValue, o.MaxValue, path)...)
	}
	return errs
}

func choices(list []command.Choice, autocomplete bool, path string) []error {
	var errs []error
	if len(list) > MaxChoices {
		errs = append(errs, newError(KindChoiceCount, join(path, "choices"),
			"at most %d choices are allowed, got %d", MaxChoices, len(list)))
	}
	if autocomplete && len(list) > 0 {
		errs = append(errs, newError(KindChoiceCount, join(path, "choices"),
			"autocomplete options cannot have choices"))
	}
	for index, choice := range list {
		length := utf8.RuneCountInString(choice.Label())
		if length < 1 || length > ChoiceNameMaxLength {
			errs = append(errs, newError(KindChoiceName, fmt.Sprintf("%s[%d]", join(path, "choices"), index),
				"choice name must be 1 to %d characters, got %d", ChoiceNameMaxLength, length))
		}
	}
	return errs
}

func bounds(minimum, maximum *command.NumericValue, path string) []error {
	if minimum == nil || maximum == nil {
		return nil
	}
	if minimum.Float64() > maximum.Float64() {
		return []error{newError(KindBounds, path,
			"min_value %s is greater than max_value %s", minimum, maximum)}
	}
	return nil
}

// effectiveType treats an unset command type as ChatInput, matching the
// service's default.
func effectiveType(kind command.CommandType) command.CommandType {
	if kind == 0 {
		return command.ChatInput
	}
	return kind
}

func join(path, member string) string {
	if path == "" {
		return member
	}
	return path + "." + member
}
