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
	"strconv"
)

const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// ProtonPath converts an absolute host path to the path Proton exposes it
// as, with the host root mounted as drive Z:.
func ProtonPath(path string) string {
	return "Z:" + path
}

// OpenArgs returns the renderer arguments that open projectFile in a
// window titled title.
func OpenArgs(projectFile, title string, width, height int) []string {
	return []string{
		"-nobrowse",
		"-control", "openWallpaper",
		"-file", ProtonPath(projectFile),
		"-playInWindow", title,
		"-width", strconv.Itoa(width),
		"-height", strconv.Itoa(height),
	}
}

// StopArgs returns the renderer arguments that stop rendering.
func StopArgs() []string {
	return []string{"-nobrowse", "-control", "stop"}
}
