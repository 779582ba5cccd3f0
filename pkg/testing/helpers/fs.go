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

package helpers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// SteamLayout describes a fake Steam installation rooted at Root.
type SteamLayout struct {
	Root string
}

// SteamApps returns the steamapps directory of the layout.
func (l SteamLayout) SteamApps() string {
	return filepath.Join(l.Root, "steamapps")
}

// Common returns the shared common applications directory of the layout.
func (l SteamLayout) Common() string {
	return filepath.Join(l.SteamApps(), "common")
}

// CompatTools returns the user compatibility tools directory of the layout.
func (l SteamLayout) CompatTools() string {
	return filepath.Join(l.Root, "compatibilitytools.d")
}

// CreateSteamLayout creates the empty directory skeleton of a Steam install.
func (h *FSHelper) CreateSteamLayout(root string) (SteamLayout, error) {
	layout := SteamLayout{Root: root}
	for _, dir := range []string{layout.Common(), layout.CompatTools()} {
		if err := h.Fs.MkdirAll(dir, 0o750); err != nil {
			return layout, fmt.Errorf("failed to create steam directory %s: %w", dir, err)
		}
	}
	return layout, nil
}

// CreateBuiltinTool creates a vendor compatibility tool under common/.
func (h *FSHelper) CreateBuiltinTool(layout SteamLayout, name string) (string, error) {
	return h.createTool(filepath.Join(layout.Common(), name))
}

// CreateUserTool creates a user-installed tool under compatibilitytools.d/.
func (h *FSHelper) CreateUserTool(layout SteamLayout, name string) (string, error) {
	return h.createTool(filepath.Join(layout.CompatTools(), name))
}

func (h *FSHelper) createTool(dir string) (string, error) {
	if err := h.Fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create tool directory %s: %w", dir, err)
	}
	if err := afero.WriteFile(h.Fs, filepath.Join(dir, "proton"), []byte("#!/usr/bin/env python3\n"), 0o750); err != nil {
		return "", fmt.Errorf("failed to write proton entry point: %w", err)
	}
	return dir, nil
}

// WriteFile writes content to path, creating parent directories.
func (h *FSHelper) WriteFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
