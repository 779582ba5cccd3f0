// wallpaper-engine-xwayland
// Copyright (c) 2026 The wallpaper-engine-xwayland Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of wallpaper-engine-xwayland.
//
// wallpaper-engine-xwayland is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wallpaper-engine-xwayland is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wallpaper-engine-xwayland.  If not, see <http://www.gnu.org/licenses/>.

package steam

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

// DefaultBinary is the Steam client command.
const DefaultBinary = "steam"

// Client sends commands to a running Steam client by invoking the steam
// binary, which forwards them to the existing instance.
type Client struct {
	cmd command.Executor
	bin string
}

// NewClientWithExecutor creates a Client with a custom command executor.
func NewClientWithExecutor(bin string, cmd command.Executor) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{bin: bin, cmd: cmd}
}

// Stop asks Steam to stop every running instance of appID.
func (c *Client) Stop(ctx context.Context, appID int) error {
	return c.run(ctx, "+app_stop", strconv.Itoa(appID))
}

// SetCompatTool binds the compatibility tool with the given internal name
// to appID.
func (c *Client) SetCompatTool(ctx context.Context, appID int, internalName string) error {
	return c.run(ctx, "+app_change_compat_tool", strconv.Itoa(appID), internalName)
}

// Launch starts appID through Steam with extra launch arguments. The client
// process is not waited on.
func (c *Client) Launch(ctx context.Context, appID int, args ...string) error {
	full := append([]string{"-applaunch", strconv.Itoa(appID)}, args...)
	log.Debug().Strs("args", full).Msg("launching via steam")

	err := c.cmd.StartWithOptions(ctx, command.StartOptions{Detach: true}, c.bin, full...)
	if err != nil {
		return fmt.Errorf("failed to start steam -applaunch %d: %w", appID, err)
	}
	return nil
}

// run executes a steam verb and waits for the forwarding process. A
// non-zero exit is only logged: the verb has been handed to the running
// client either way.
func (c *Client) run(ctx context.Context, args ...string) error {
	log.Debug().Strs("args", args).Msg("running steam command")

	err := c.cmd.Run(ctx, c.bin, args...)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Warn().Err(err).Strs("args", args).Msg("steam command exited with non-zero status")
		return nil
	}
	return fmt.Errorf("failed to run steam %s: %w", args[0], err)
}
