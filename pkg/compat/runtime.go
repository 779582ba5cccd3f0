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

package compat

import (
	"context"
	"fmt"
	"os"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

// Runtime runs Windows executables through a tool's entry point directly,
// without going through the Steam client.
type Runtime struct {
	cmd   command.Executor
	entry string
	env   LaunchEnv
}

// NewRuntimeWithExecutor creates a runtime with a custom command executor.
// This is useful for testing.
func NewRuntimeWithExecutor(entry string, env LaunchEnv, cmd command.Executor) *Runtime {
	return &Runtime{
		cmd:   cmd,
		entry: entry,
		env:   env,
	}
}

// Entry returns the entry point executable.
func (r *Runtime) Entry() string {
	return r.entry
}

// Run starts "<entry> run <exe> <args...>" detached. It returns once the
// process has been spawned.
func (r *Runtime) Run(ctx context.Context, exe string, args ...string) error {
	full := append([]string{"run", exe}, args...)
	opts := command.StartOptions{
		Env:    r.env.Environ(os.Environ()),
		Detach: true,
	}

	log.Debug().Str("entry", r.entry).Strs("args", full).Msg("starting through compatibility runtime")
	if err := r.cmd.StartWithOptions(ctx, opts, r.entry, full...); err != nil {
		return fmt.Errorf("failed to run %s through %s: %w", exe, r.entry, err)
	}
	return nil
}
