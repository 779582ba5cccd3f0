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

// Package steam locates a Steam installation and drives the Steam client
// through its command line.
package steam

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// WallpaperEngineAppID is the Steam app ID of Wallpaper Engine.
	WallpaperEngineAppID = 431960

	// WebHelperWindowClass is the X11 window class of the running client.
	WebHelperWindowClass = "steamwebhelper"

	// FlatpakSteamID is the Flatpak app ID for Steam.
	FlatpakSteamID = "com.valvesoftware.Steam"
)

var ErrSteamNotFound = errors.New("steam installation not found")

// Paths is the directory layout of one Steam installation.
type Paths struct {
	Root string
}

// NewPaths creates Paths for the Steam root directory.
func NewPaths(root string) Paths {
	return Paths{Root: root}
}

// SteamApps returns the main library's steamapps directory.
func (p Paths) SteamApps() string {
	return filepath.Join(p.Root, "steamapps")
}

// Common returns the main library's common directory, where Valve's own
// compatibility tools are installed next to games.
func (p Paths) Common() string {
	return filepath.Join(p.SteamApps(), "common")
}

// CompatTools returns the directory of user-installed compatibility tools.
func (p Paths) CompatTools() string {
	return filepath.Join(p.Root, "compatibilitytools.d")
}

// CompatData returns the Proton prefix directory of appID in the main library.
func (p Paths) CompatData(appID int) string {
	return filepath.Join(p.SteamApps(), "compatdata", strconv.Itoa(appID))
}

// WorkshopContent returns the workshop content directory of appID in the
// main library.
func (p Paths) WorkshopContent(appID int) string {
	return filepath.Join(p.SteamApps(), "workshop", "content", strconv.Itoa(appID))
}

// AppPaths are the per-app directories inside the library holding an app.
type AppPaths struct {
	// Install is the app's install directory.
	Install string
	// CompatData is the app's Proton prefix directory.
	CompatData string
	// Workshop is the app's downloaded workshop content directory.
	Workshop string
}

// ForApp locates appID in the Steam libraries and returns its directories.
// If no manifest for the app is found, the main library and
// fallbackInstallDir are assumed.
func (p Paths) ForApp(fs afero.Fs, appID int, fallbackInstallDir string) AppPaths {
	steamApps := p.SteamApps()
	var install string

	if app, ok := FindApp(fs, steamApps, appID); ok {
		steamApps = app.Library
		if app.InstallDir == "" {
			app.InstallDir = fallbackInstallDir
		}
		install = app.Dir()
	} else {
		log.Debug().Int("appID", appID).Msg("app manifest not found, assuming main library")
		install = filepath.Join(steamApps, "common", fallbackInstallDir)
	}

	id := strconv.Itoa(appID)
	return AppPaths{
		Install:    install,
		CompatData: filepath.Join(steamApps, "compatdata", id),
		Workshop:   filepath.Join(steamApps, "workshop", "content", id),
	}
}

// FindRoot locates the Steam root directory. A non-empty override is used
// as-is when it exists; otherwise the usual native, Flatpak and Snap
// locations under home are tried in order.
func FindRoot(fs afero.Fs, home, override string) (string, error) {
	if override != "" {
		if isDir(fs, override) {
			log.Debug().Msgf("using user-configured Steam directory: %s", override)
			return override, nil
		}
		log.Warn().Msgf("user-configured Steam directory not found: %s", override)
	}

	paths := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam"),
		filepath.Join(home, "snap", "steam", "common", ".steam", "steam"),
	}

	for _, path := range paths {
		if isDir(fs, path) {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path, nil
		}
	}

	return "", fmt.Errorf("%w (looked in %s)", ErrSteamNotFound, paths[0])
}

func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}
