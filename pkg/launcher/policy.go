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

package launcher

import (
	"fmt"
	"time"
)

const (
	DefaultWindowTimeout = 20 * time.Second
	DefaultPollInterval  = 100 * time.Millisecond
)

// PathPolicy selects how a wallpaper is started.
type PathPolicy int

const (
	// PathAuto hands the first launch to Steam and later launches, when the
	// renderer already runs, straight to the compatibility runtime.
	PathAuto PathPolicy = iota
	// PathDirect always starts the renderer through the compatibility
	// runtime.
	PathDirect
)

func (p PathPolicy) String() string {
	switch p {
	case PathAuto:
		return "auto"
	case PathDirect:
		return "direct"
	default:
		return fmt.Sprintf("PathPolicy(%d)", int(p))
	}
}

// ParsePathPolicy parses "auto" or "direct".
func ParsePathPolicy(s string) (PathPolicy, error) {
	switch s {
	case "auto", "":
		return PathAuto, nil
	case "direct":
		return PathDirect, nil
	default:
		return PathAuto, fmt.Errorf("%w: %q", ErrInvalidPathPolicy, s)
	}
}

// WindowWait bounds how long to wait for each wallpaper window. A zero
// Timeout waits forever.
type WindowWait struct {
	Timeout time.Duration
}

// WaitBounded gives up on a window after d.
func WaitBounded(d time.Duration) WindowWait {
	return WindowWait{Timeout: d}
}

// WaitUnbounded waits for windows forever.
func WaitUnbounded() WindowWait {
	return WindowWait{}
}

// Bounded reports whether the wait has a limit.
func (w WindowWait) Bounded() bool {
	return w.Timeout > 0
}

func (w WindowWait) String() string {
	if !w.Bounded() {
		return "unbounded"
	}
	return w.Timeout.String()
}
