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

// Package desktop answers questions about the running X11 session: which
// windows exist and which processes are running.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
)

// DefaultXdotool is the xdotool command.
const DefaultXdotool = "xdotool"

// Windows searches X11 windows with xdotool.
type Windows struct {
	cmd command.Executor
	bin string
}

// NewWindowsWithExecutor creates a Windows with a custom command executor.
func NewWindowsWithExecutor(bin string, cmd command.Executor) *Windows {
	if bin == "" {
		bin = DefaultXdotool
	}
	return &Windows{bin: bin, cmd: cmd}
}

// TitleExists reports whether a window whose name matches title exists.
func (w *Windows) TitleExists(ctx context.Context, title string) (bool, error) {
	return w.search(ctx, "--name", title)
}

// ClassExists reports whether a window of the given class exists.
func (w *Windows) ClassExists(ctx context.Context, class string) (bool, error) {
	return w.search(ctx, "--class", class)
}

// search exits 0 when at least one window matched and 1 when none did.
func (w *Windows) search(ctx context.Context, by, pattern string) (bool, error) {
	err := w.cmd.Run(ctx, w.bin, "search", by, pattern)
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("failed to run %s search %s %q: %w", w.bin, by, pattern, err)
}
