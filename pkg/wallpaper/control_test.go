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

package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenArgs(t *testing.T) {
	t.Parallel()

	got := OpenArgs("/ws/123/project.json", "Wallpaper #0", 1920, 1080)

	assert.Equal(t, []string{
		"-nobrowse",
		"-control", "openWallpaper",
		"-file", "Z:/ws/123/project.json",
		"-playInWindow", "Wallpaper #0",
		"-width", "1920",
		"-height", "1080",
	}, got)
}

func TestStopArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"-nobrowse", "-control", "stop"}, StopArgs())
}

func TestProtonPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Z:/home/user/file", ProtonPath("/home/user/file"))
}
