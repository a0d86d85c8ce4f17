// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bureau-foundation/switchboard/lib/model/command"
	"github.com/bureau-foundation/switchboard/lib/ref"
	"github.com/bureau-foundation/switchboard/lib/validate"
)

// GetCommandsRequest lists the commands registered in a scope.
type GetCommandsRequest struct {
	Scope command.Scope
}

// Build returns GET on the scope's command collection.
func (r *GetCommandsRequest) Build() (*Request, error) {
	if err := validateScope(r.Scope); err != nil {
		return nil, err
	}
	return newRequest(http.MethodGet, r.Scope.Path()), nil
}

// SetCommandsRequest overwrites every command in a scope. Commands
// missing from the list are deleted by the service.
type SetCommandsRequest struct {
	Scope    command.Scope
	Commands []command.Command
}

// Validate checks the scope and every command definition.
func (r *SetCommandsRequest) Validate() error {
	if err := validateScope(r.Scope); err != nil {
		return err
	}
	return validate.Commands(r.Commands)
}

// Build returns PUT on the scope's command collection.
func (r *SetCommandsRequest) Build() (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	body, err := command.EncodeCommands(r.Commands)
	if err != nil {
		return nil, fmt.Errorf("rest: encoding commands: %w", err)
	}
	request := newRequest(http.MethodPut, r.Scope.Path())
	request.Body = body
	return request, nil
}

// CreateCommandRequest creates or replaces one command in a scope. A
// command with the same name and type is overwritten.
type CreateCommandRequest struct {
	Scope   command.Scope
	Command command.Command
}

// Validate checks the scope and the command definition.
func (r *CreateCommandRequest) Validate() error {
	if err := validateScope(r.Scope); err != nil {
		return err
	}
	return validate.Command(r.Command)
}

// Build returns POST on the scope's command collection.
func (r *CreateCommandRequest) Build() (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	body, err := r.Command.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("rest: encoding command %q: %w", r.Command.Name, err)
	}
	request := newRequest(http.MethodPost, r.Scope.Path())
	request.Body = body
	return request, nil
}

func validateScope(scope command.Scope) error {
	if scope.Application.IsZero() {
		return fmt.Errorf("rest: application ID is required")
	}
	return nil
}

// GetGlobalCommands fetches the application's global commands.
func (c *Client) GetGlobalCommands(ctx context.Context, application ref.ApplicationID) ([]command.Command, error) {
	return c.GetCommands(ctx, command.GlobalScope(application))
}

// GetGuildCommands fetches the application's commands in guild.
func (c *Client) GetGuildCommands(ctx context.Context, application ref.ApplicationID, guild ref.GuildID) ([]command.Command, error) {
	return c.GetCommands(ctx, command.GuildScope(application, guild))
}

// SetGlobalCommands overwrites the application's global commands.
func (c *Client) SetGlobalCommands(ctx context.Context, application ref.ApplicationID, commands []command.Command) ([]command.Command, error) {
	return c.SetCommands(ctx, command.GlobalScope(application), commands)
}

// SetGuildCommands overwrites the application's commands in guild.
func (c *Client) SetGuildCommands(ctx context.Context, application ref.ApplicationID, guild ref.GuildID, commands []command.Command) ([]command.Command, error) {
	return c.SetCommands(ctx, command.GuildScope(application, guild), commands)
}

// CreateGlobalCommand creates one global command.
func (c *Client) CreateGlobalCommand(ctx context.Context, application ref.ApplicationID, definition command.Command) (*command.Command, error) {
	return c.CreateCommand(ctx, command.GlobalScope(application), definition)
}

// CreateGuildCommand creates one command in guild.
func (c *Client) CreateGuildCommand(ctx context.Context, application ref.ApplicationID, guild ref.GuildID, definition command.Command) (*command.Command, error) {
	return c.CreateCommand(ctx, command.GuildScope(application, guild), definition)
}

// GetCommands fetches the commands of scope from the service and
// refreshes the cache.
func (c *Client) GetCommands(ctx context.Context, scope command.Scope) ([]command.Command, error) {
	request, err := (&GetCommandsRequest{Scope: scope}).Build()
	if err != nil {
		return nil, err
	}
	commands, err := c.doCommands(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("rest: listing commands in %s: %w", scope, err)
	}
	c.cacheCommands(scope, commands)
	return commands, nil
}

// CachedCommands returns the commands of scope, fetching them only when
// the scope is not cached. The returned commands are a deep copy of the
// cache entry.
func (c *Client) CachedCommands(ctx context.Context, scope command.Scope) ([]command.Command, error) {
	if c.commands != nil {
		if commands, ok := c.commands.Get(scope); ok {
			c.logger.Debug("command cache hit", "scope", scope.String())
			return command.CloneCommands(commands), nil
		}
	}
	return c.GetCommands(ctx, scope)
}

// InvalidateCommands drops scope from the cache.
func (c *Client) InvalidateCommands(scope command.Scope) {
	if c.commands != nil {
		c.commands.Remove(scope)
	}
}

// SetCommands overwrites the commands of scope and caches the service's
// response.
func (c *Client) SetCommands(ctx context.Context, scope command.Scope, commands []command.Command) ([]command.Command, error) {
	request, err := (&SetCommandsRequest{Scope: scope, Commands: commands}).Build()
	if err != nil {
		return nil, err
	}
	registered, err := c.doCommands(ctx, request)
	if err != nil {
		c.InvalidateCommands(scope)
		return nil, fmt.Errorf("rest: overwriting commands in %s: %w", scope, err)
	}
	c.cacheCommands(scope, registered)
	c.logger.Info("overwrote commands",
		"scope", scope.String(),
		"count", len(registered),
	)
	return registered, nil
}

// CreateCommand creates one command in scope.
func (c *Client) CreateCommand(ctx context.Context, scope command.Scope, definition command.Command) (*command.Command, error) {
	request, err := (&CreateCommandRequest{Scope: scope, Command: definition}).Build()
	if err != nil {
		return nil, err
	}
	c.InvalidateCommands(scope)

	body, err := c.Do(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("rest: creating command %q in %s: %w", definition.Name, scope, err)
	}
	var created command.Command
	if err := created.UnmarshalJSON(body); err != nil {
		return nil, fmt.Errorf("rest: failed to parse created command: %w", err)
	}
	c.logger.Info("created command",
		"scope", scope.String(),
		"name", created.Name,
		"id", created.ID.String(),
	)
	return &created, nil
}

func (c *Client) doCommands(ctx context.Context, request *Request) ([]command.Command, error) {
	body, err := c.Do(ctx, request)
	if err != nil {
		return nil, err
	}
	commands, err := command.DecodeCommands(body)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to parse %s %s response: %w", request.Method, request.Path, err)
	}
	return commands, nil
}

func (c *Client) cacheCommands(scope command.Scope, commands []command.Command) {
	if c.commands != nil {
		c.commands.Add(scope, command.CloneCommands(commands))
	}
}
