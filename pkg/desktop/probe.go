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

package desktop

import (
	"context"
)

// Probe combines window and process queries into the liveness checks the
// launcher needs.
type Probe struct {
	Windows   *Windows
	Processes ProcessQuery
	// PlatformClass is the window class present while Steam runs.
	PlatformClass string
	// RendererImages are the renderer process names to look for.
	RendererImages []string
}

// PlatformRunning reports whether a Steam client window is present.
func (p *Probe) PlatformRunning(ctx context.Context) (bool, error) {
	return p.Windows.ClassExists(ctx, p.PlatformClass)
}

// RendererRunning reports whether any renderer image is running.
func (p *Probe) RendererRunning(ctx context.Context) (bool, error) {
	for _, image := range p.RendererImages {
		running, err := p.Processes.Running(ctx, image)
		if err != nil {
			return false, err
		}
		if running {
			return true, nil
		}
	}
	return false, nil
}

// WindowExists reports whether a window titled title exists.
func (p *Probe) WindowExists(ctx context.Context, title string) (bool, error) {
	return p.Windows.TitleExists(ctx, title)
}
