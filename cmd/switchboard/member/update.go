// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package member

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/switchboard/cmd/switchboard/cli"
	"github.com/bureau-foundation/switchboard/lib/clock"
	"github.com/bureau-foundation/switchboard/lib/config"
	"github.com/bureau-foundation/switchboard/lib/nullable"
	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/rest"
)

type updateParams struct {
	cli.JSONOutput
	Config       cli.ConfigFlags
	Guild        string        `flag:"guild"         desc:"guild ID (default: application.guild from config)"`
	User         string        `flag:"user"          desc:"user ID of the member (required)"`
	Nick         string        `flag:"nick"          desc:"set the nickname"`
	ClearNick    bool          `flag:"clear-nick"    desc:"reset the nickname"`
	TimeoutUntil string        `flag:"timeout-until" desc:"time the member out until this RFC 3339 time"`
	Timeout      time.Duration `flag:"timeout"       desc:"time the member out for this long"`
	ClearTimeout bool          `flag:"clear-timeout" desc:"remove the member's timeout"`
	Channel      string        `flag:"channel"       desc:"move the member to this voice channel"`
	Disconnect   bool          `flag:"disconnect"    desc:"disconnect the member from voice"`
	Deaf         bool          `flag:"deaf"          desc:"server-deafen (--deaf=false to undeafen)"`
	Mute         bool          `flag:"mute"          desc:"server-mute (--mute=false to unmute)"`
	Roles        []string      `flag:"role"          desc:"replace the member's roles with these role IDs"`
	ClearRoles   bool          `flag:"clear-roles"   desc:"remove every role"`
	Reason       string        `flag:"reason"        desc:"audit log reason"`
	DryRun       bool          `flag:"dry-run"       desc:"print the request without sending it"`
}

// memberResult is the JSON output of "member update".
type memberResult struct {
	GuildID                    string     `json:"guild_id"`
	UserID                     string     `json:"user_id"`
	DisplayName                string     `json:"display_name"`
	Nick                       *string    `json:"nick"`
	CommunicationDisabledUntil *time.Time `json:"communication_disabled_until"`
	Deaf                       bool       `json:"deaf"`
	Mute                       bool       `json:"mute"`
	Roles                      []string   `json:"roles"`
}

func updateCommand(out io.Writer, clk clock.Clock) *cli.Command {
	var params updateParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "update",
		Summary: "Change a member's nickname, timeout, voice state, or roles",
		Description: `Apply a partial update to a guild member. Only the fields named by
flags are sent; everything else is left unchanged.

Clearable fields take a setting flag and a clearing flag, which are
mutually exclusive: --nick/--clear-nick, --timeout-until or
--timeout/--clear-timeout, --channel/--disconnect, --role/--clear-roles.
Timeouts may be at most 28 days ahead.`,
		Usage: "switchboard member update --user <id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Time a member out for an hour",
				Command:     "switchboard member update --user 80351110224678912 --timeout 1h --reason 'spam'",
			},
			{
				Description: "Reset a nickname and preview the request",
				Command:     "switchboard member update --user 80351110224678912 --clear-nick --dry-run",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("update", &params)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			cfg, err := params.Config.Load()
			if err != nil {
				return err
			}
			request, err := buildRequest(&params, flagSet, cfg, clk.Now())
			if err != nil {
				return err
			}

			if params.DryRun {
				built, err := request.Build(clk.Now())
				if err != nil {
					return err
				}
				return writeRequest(out, built)
			}

			client, closeClient, err := cli.NewClient(cfg, logger)
			if err != nil {
				return err
			}
			defer closeClient()

			member, err := client.UpdateGuildMember(ctx, request)
			if err != nil {
				return err
			}

			result := memberResult{
				GuildID:                    request.GuildID.String(),
				UserID:                     request.UserID.String(),
				DisplayName:                member.DisplayName(),
				Nick:                       member.Nick,
				CommunicationDisabledUntil: member.CommunicationDisabledUntil,
				Deaf:                       member.Deaf,
				Mute:                       member.Mute,
				Roles:                      make([]string, len(member.Roles)),
			}
			for index, role := range member.Roles {
				result.Roles[index] = role.String()
			}
			if done, err := params.EmitJSON(out, result); done {
				return err
			}

			fmt.Fprintf(out, "updated %s (%s) in guild %s\n", result.DisplayName, result.UserID, result.GuildID)
			if result.CommunicationDisabledUntil != nil {
				fmt.Fprintf(out, "  timed out until %s\n", result.CommunicationDisabledUntil.UTC().Format(time.RFC3339))
			}
			return nil
		},
	}
}

// buildRequest translates flags into a request. Flags that were not
// given leave their fields unset.
func buildRequest(params *updateParams, flagSet *pflag.FlagSet, cfg *config.Config, now time.Time) (*rest.UpdateGuildMemberRequest, error) {
	request := &rest.UpdateGuildMemberRequest{Reason: params.Reason}

	var err error
	if params.Guild != "" {
		request.GuildID, err = ref.Parse[ref.GuildMarker](params.Guild)
		if err != nil {
			return nil, fmt.Errorf("--guild: %w", err)
		}
	} else {
		request.GuildID, err = cfg.GuildID()
		if err != nil {
			return nil, err
		}
		if request.GuildID.IsZero() {
			return nil, fmt.Errorf("--guild is required (no application.guild in config)")
		}
	}

	if params.User == "" {
		return nil, fmt.Errorf("--user is required")
	}
	request.UserID, err = ref.Parse[ref.UserMarker](params.User)
	if err != nil {
		return nil, fmt.Errorf("--user: %w", err)
	}

	changed := func(name string) bool {
		return flagSet != nil && flagSet.Changed(name)
	}

	switch {
	case changed("nick") && params.ClearNick:
		return nil, fmt.Errorf("--nick and --clear-nick are mutually exclusive")
	case changed("nick"):
		request.Nick = nullable.Value(params.Nick)
	case params.ClearNick:
		request.Nick = nullable.Null[string]()
	}

	timeouts := 0
	for _, name := range []string{"timeout-until", "timeout", "clear-timeout"} {
		if changed(name) {
			timeouts++
		}
	}
	if timeouts > 1 {
		return nil, fmt.Errorf("--timeout-until, --timeout, and --clear-timeout are mutually exclusive")
	}
	switch {
	case changed("timeout-until"):
		until, err := time.Parse(time.RFC3339, params.TimeoutUntil)
		if err != nil {
			return nil, fmt.Errorf("--timeout-until: %w", err)
		}
		request.CommunicationDisabledUntil = nullable.Value(until)
	case changed("timeout"):
		if params.Timeout <= 0 {
			return nil, fmt.Errorf("--timeout must be positive (use --clear-timeout to remove a timeout)")
		}
		request.CommunicationDisabledUntil = nullable.Value(now.Add(params.Timeout).UTC())
	case params.ClearTimeout:
		request.CommunicationDisabledUntil = nullable.Null[time.Time]()
	}

	switch {
	case changed("channel") && params.Disconnect:
		return nil, fmt.Errorf("--channel and --disconnect are mutually exclusive")
	case changed("channel"):
		channel, err := ref.Parse[ref.ChannelMarker](params.Channel)
		if err != nil {
			return nil, fmt.Errorf("--channel: %w", err)
		}
		request.ChannelID = nullable.Value(channel)
	case params.Disconnect:
		request.ChannelID = nullable.Null[ref.ChannelID]()
	}

	if changed("deaf") {
		request.Deaf = &params.Deaf
	}
	if changed("mute") {
		request.Mute = &params.Mute
	}

	switch {
	case changed("role") && params.ClearRoles:
		return nil, fmt.Errorf("--role and --clear-roles are mutually exclusive")
	case changed("role"):
		roles := make([]ref.RoleID, len(params.Roles))
		for index, raw := range params.Roles {
			roles[index], err = ref.Parse[ref.RoleMarker](raw)
			if err != nil {
				return nil, fmt.Errorf("--role: %w", err)
			}
		}
		request.Roles = &roles
	case params.ClearRoles:
		roles := []ref.RoleID{}
		request.Roles = &roles
	}

	return request, nil
}

// writeRequest prints a built request the way it would go on the wire.
func writeRequest(out io.Writer, request *rest.Request) error {
	fmt.Fprintf(out, "%s %s\n", request.Method, request.Path)
	if reason := request.Header.Get(rest.AuditReasonHeader); reason != "" {
		fmt.Fprintf(out, "%s: %s\n", rest.AuditReasonHeader, reason)
	}
	_, err := fmt.Fprintf(out, "\n%s\n", request.Body)
	return err
}
