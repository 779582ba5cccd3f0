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
	"path/filepath"
	"strings"

	"github.com/Kyza/wallpaper-engine-xwayland/internal/vdfutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// ToolManifestFile describes how Steam invokes a compatibility tool.
	ToolManifestFile = "toolmanifest.vdf"
	// DefaultEntryPoint is the runtime script every Proton build ships.
	DefaultEntryPoint = "proton"
)

// entryPoint reads the tool manifest's command line and returns the
// executable it names, falling back to <dir>/proton.
func entryPoint(fs afero.Fs, dir string) string {
	fallback := filepath.Join(dir, DefaultEntryPoint)

	manifestPath := filepath.Join(dir, ToolManifestFile)
	if _, err := fs.Stat(manifestPath); err != nil {
		return fallback
	}

	m, err := vdfutil.ParseFile(fs, manifestPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse tool manifest, using default entry point")
		return fallback
	}

	cmdline, ok := vdfutil.String(m, "commandline", "manifest")
	if !ok {
		return fallback
	}
	fields := strings.Fields(cmdline)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "%") {
		return fallback
	}

	return filepath.Join(dir, strings.TrimPrefix(fields[0], "/"))
}

// looksLikeTool reports whether dir holds a Proton-style runtime.
func looksLikeTool(fs afero.Fs, dir string) bool {
	for _, name := range []string{ToolManifestFile, DefaultEntryPoint} {
		if _, err := fs.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
