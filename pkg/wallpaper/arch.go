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

// Package wallpaper knows the Wallpaper Engine install layout, its command
// line control protocol and the metadata of workshop items.
package wallpaper

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultInstallDir is the app's folder under steamapps/common.
const DefaultInstallDir = "wallpaper_engine"

var (
	ErrInvalidArch      = errors.New("invalid architecture")
	ErrRendererNotFound = errors.New("wallpaper engine executable not found")
)

// Arch selects the 32 or 64 bit renderer build.
type Arch string

const (
	Arch64 Arch = "64"
	Arch32 Arch = "32"
)

// ParseArch accepts exactly "64" or "32".
func ParseArch(s string) (Arch, error) {
	switch Arch(s) {
	case Arch64, Arch32:
		return Arch(s), nil
	default:
		return "", fmt.Errorf("%w: %q (must be 64 or 32)", ErrInvalidArch, s)
	}
}

// Image returns the renderer executable name for the architecture.
func (a Arch) Image() string {
	return "wallpaper" + string(a) + ".exe"
}

// ImageNames returns the renderer executable names of every architecture.
func ImageNames() []string {
	return []string{Arch64.Image(), Arch32.Image()}
}

// Executable returns the renderer path for arch inside installDir.
func Executable(fs afero.Fs, installDir string, arch Arch) (string, error) {
	path := filepath.Join(installDir, arch.Image())
	if _, err := fs.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrRendererNotFound, path)
	}
	return path, nil
}
