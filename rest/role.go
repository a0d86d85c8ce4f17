// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bureau-foundation/switchboard/lib/model/guild"
	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/lib/validate"
)

// CreateRoleRequest creates a role. Unset fields take the service's
// defaults (a role named "new role" with no color and no permissions).
type CreateRoleRequest struct {
	GuildID ref.GuildID

	Color *uint32
	Hoist *bool
	// Icon is an image data URI ("data:image/png;base64,...").
	Icon        string
	Mentionable *bool
	Name        string
	Permissions *guild.Permissions
	// UnicodeEmoji is the role's standard emoji icon.
	UnicodeEmoji string

	Reason string
}

type createRoleBody struct {
	Color        *uint32            `json:"color,omitempty"`
	Hoist        *bool              `json:"hoist,omitempty"`
	Icon         string             `json:"icon,omitempty"`
	Mentionable  *bool              `json:"mentionable,omitempty"`
	Name         string             `json:"name,omitempty"`
	Permissions  *guild.Permissions `json:"permissions,omitempty"`
	UnicodeEmoji string             `json:"unicode_emoji,omitempty"`
}

// Validate checks the request.
func (r *CreateRoleRequest) Validate() error {
	if r.GuildID.IsZero() {
		return fmt.Errorf("rest: guild ID is required")
	}
	if r.Color != nil && *r.Color > 0xFFFFFF {
		return fmt.Errorf("rest: role color %#x is not a 24-bit RGB value", *r.Color)
	}
	return validate.AuditReason(r.Reason)
}

// Build returns POST /guilds/{guild}/roles.
func (r *CreateRoleRequest) Build() (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	request, err := newRequest(http.MethodPost, fmt.Sprintf("/guilds/%s/roles", r.GuildID)).withJSON(createRoleBody{
		Color:        r.Color,
		Hoist:        r.Hoist,
		Icon:         r.Icon,
		Mentionable:  r.Mentionable,
		Name:         r.Name,
		Permissions:  r.Permissions,
		UnicodeEmoji: r.UnicodeEmoji,
	})
	if err != nil {
		return nil, err
	}
	return request.withReason(r.Reason)
}

// CreateRole creates the role and returns it.
func (c *Client) CreateRole(ctx context.Context, request *CreateRoleRequest) (*guild.Role, error) {
	built, err := request.Build()
	if err != nil {
		return nil, err
	}
	var role guild.Role
	if err := c.do(ctx, built, &role); err != nil {
		return nil, fmt.Errorf("rest: creating role in guild %s: %w", request.GuildID, err)
	}
	c.logger.Info("created role",
		"guild_id", request.GuildID.String(),
		"role_id", role.ID.String(),
		"name", role.Name,
	)
	return &role, nil
}
