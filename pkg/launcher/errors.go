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
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoItems           = errors.New("no wallpapers provided")
	ErrInvalidItemID     = errors.New("invalid workshop item id")
	ErrWindowTimeout     = errors.New("timed out waiting for window")
	ErrInvalidPathPolicy = errors.New("invalid path policy")
)

// WindowTimeoutError reports a wallpaper window that did not appear within
// the configured wait.
type WindowTimeoutError struct {
	Title  string
	Waited time.Duration
}

func (e *WindowTimeoutError) Error() string {
	return fmt.Sprintf("%s: %q after %s", ErrWindowTimeout, e.Title, e.Waited)
}

func (*WindowTimeoutError) Unwrap() error {
	return ErrWindowTimeout
}
