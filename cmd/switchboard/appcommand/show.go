// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package appcommand

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/model/command"
)

type showParams struct {
	cli.JSONOutput
	Width int `flag:"width,w" desc:"truncate descriptions to this many columns (0 for no limit)" default:"60"`
}

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func showCommand(out io.Writer) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Render a command definition file as a tree",
		Description: `Decode a definition file and print each command's option tree:
subcommand groups, subcommands, and leaf options with their types,
flags, bounds, and choices.

With --json, prints the file re-encoded in canonical form instead. The
canonical form is what "sync" pushes: defaults filled in, empty
collections written as [], and floats written with a fraction.`,
		Usage: "switchboard commands show <file> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			path, err := requireFile(args, "switchboard commands show <file>")
			if err != nil {
				return err
			}

			definitions, err := readDefinitions(path)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(out, definitions); done {
				return err
			}

			_, err = fmt.Fprintln(out, renderDefinitions(path, definitions, params.Width))
			return err
		},
	}
}

// renderDefinitions builds the tree of every command in a file.
// Descriptions longer than width columns are truncated; width 0
// disables truncation.
func renderDefinitions(title string, definitions []command.Command, width int) string {
	root := tree.Root(fmt.Sprintf("%s (%d commands)", title, len(definitions)))
	for _, definition := range definitions {
		root.Child(renderCommand(definition, width))
	}
	return root.String()
}

func renderCommand(definition command.Command, width int) *tree.Tree {
	kind := definition.Kind
	if kind == 0 {
		kind = command.ChatInput
	}

	name := definition.Name
	if kind == command.ChatInput {
		name = "/" + name
	}
	label := nameStyle.Render(name)
	if kind != command.ChatInput {
		label += " " + typeStyle.Render(strings.ToLower(kind.String()))
	}
	if definition.DefaultPermission != nil && !*definition.DefaultPermission {
		label += " " + detailStyle.Render("[disabled by default]")
	}
	if definition.Description != "" {
		label += "  " + truncate(definition.Description, width)
	}

	node := tree.Root(label)
	for _, option := range definition.Options {
		node.Child(renderOption(option, width))
	}
	return node
}

func renderOption(option command.Option, width int) any {
	var flags []string
	if option.IsRequired() {
		flags = append(flags, "required")
	}
	if option.IsAutocomplete() {
		flags = append(flags, "autocomplete")
	}

	var choices []command.Choice
	switch o := option.(type) {
	case command.StringOption:
		choices = o.Choices
	case command.IntegerOption:
		choices = o.Choices
		flags = append(flags, boundsOf(o.MinValue, o.MaxValue)...)
	case command.NumberOption:
		choices = o.Choices
		flags = append(flags, boundsOf(o.MinValue, o.MaxValue)...)
	case command.ChannelOption:
		if len(o.ChannelTypes) > 0 {
			types := make([]string, len(o.ChannelTypes))
			for index, channelType := range o.ChannelTypes {
				types[index] = channelType.String()
			}
			flags = append(flags, "channels: "+strings.Join(types, ","))
		}
	}

	label := nameStyle.Render(command.NameOf(option)) + " " + typeStyle.Render(strings.ToLower(option.Kind().String()))
	if len(flags) > 0 {
		label += " " + detailStyle.Render("["+strings.Join(flags, ", ")+"]")
	}
	label += "  " + truncate(command.DescriptionOf(option), width)

	children := command.ChildrenOf(option)
	if len(children) == 0 && len(choices) == 0 {
		return label
	}

	node := tree.Root(label)
	for _, child := range children {
		node.Child(renderOption(child, width))
	}
	for _, choice := range choices {
		node.Child(detailStyle.Render(choiceLabel(choice)))
	}
	return node
}

func boundsOf(minimum, maximum *command.NumericValue) []string {
	var bounds []string
	if minimum != nil {
		bounds = append(bounds, "min "+minimum.String())
	}
	if maximum != nil {
		bounds = append(bounds, "max "+maximum.String())
	}
	return bounds
}

func choiceLabel(choice command.Choice) string {
	switch c := choice.(type) {
	case command.StringChoice:
		return fmt.Sprintf("%s = %q", c.Name, c.Value)
	case command.IntChoice:
		return fmt.Sprintf("%s = %d", c.Name, c.Value)
	case command.NumberChoice:
		return fmt.Sprintf("%s = %s", c.Name, c.Value)
	default:
		return choice.Label()
	}
}

func truncate(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
