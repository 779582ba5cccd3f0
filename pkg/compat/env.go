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

import "strings"

// Environment variables Proton reads when started outside the Steam client.
const (
	EnvProtonDir         = "PROTON_DIR"
	EnvCompatDataPath    = "STEAM_COMPAT_DATA_PATH"
	EnvClientInstallPath = "STEAM_COMPAT_CLIENT_INSTALL_PATH"
)

// LaunchEnv is the environment handed to one Proton invocation. It is
// applied to the child only; our own environment is never modified.
type LaunchEnv struct {
	ProtonDir         string
	CompatDataPath    string
	ClientInstallPath string
}

// Vars returns the launch variables as KEY=value pairs.
func (e LaunchEnv) Vars() []string {
	return []string{
		EnvProtonDir + "=" + e.ProtonDir,
		EnvCompatDataPath + "=" + e.CompatDataPath,
		EnvClientInstallPath + "=" + e.ClientInstallPath,
	}
}

// Environ returns base with the launch variables replacing any existing
// definitions of the same keys.
func (e LaunchEnv) Environ(base []string) []string {
	vars := e.Vars()
	out := make([]string, 0, len(base)+len(vars))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		switch key {
		case EnvProtonDir, EnvCompatDataPath, EnvClientInstallPath:
			continue
		}
		out = append(out, kv)
	}
	return append(out, vars...)
}
