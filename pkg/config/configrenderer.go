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

package config

const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

type Renderer struct {
	// Arch is the default renderer build, "64" or "32".
	Arch   string `toml:"arch,omitempty" validate:"omitempty,oneof=64 32"`
	Width  int    `toml:"width" validate:"gt=0"`
	Height int    `toml:"height" validate:"gt=0"`
}

type Preview struct {
	Enabled bool `toml:"enabled"`
}

func (c *Instance) Arch() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Renderer.Arch
}

func (c *Instance) Width() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Renderer.Width
}

func (c *Instance) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Renderer.Height
}

func (c *Instance) PreviewEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Preview.Enabled
}
