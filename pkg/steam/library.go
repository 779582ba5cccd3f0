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

package steam

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/Kyza/wallpaper-engine-xwayland/internal/vdfutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// App is a Steam app found through its manifest.
type App struct {
	// Library is the steamapps directory holding the app.
	Library    string
	Name       string
	InstallDir string
	ID         int
}

// Dir returns the app's install directory.
func (a App) Dir() string {
	return filepath.Join(a.Library, "common", a.InstallDir)
}

// ReadAppManifest reads appmanifest_<id>.acf from a steamapps directory.
func ReadAppManifest(fs afero.Fs, steamAppsDir string, appID int) (App, bool) {
	manifestPath := filepath.Join(steamAppsDir, fmt.Sprintf("appmanifest_%d.acf", appID))

	m, err := vdfutil.ParseFile(fs, manifestPath)
	if err != nil {
		log.Debug().Err(err).Int("appID", appID).Msg("failed to read app manifest")
		return App{}, false
	}

	name, ok := vdfutil.String(m, "name", "appstate")
	if !ok {
		log.Warn().Int("appID", appID).Msg("name not found in manifest")
		return App{}, false
	}
	installDir, _ := vdfutil.String(m, "installdir", "appstate")

	return App{
		Library:    steamAppsDir,
		Name:       name,
		InstallDir: installDir,
		ID:         appID,
	}, true
}

// FindApp searches the main library and every library listed in its
// libraryfolders.vdf for appID.
func FindApp(fs afero.Fs, mainSteamAppsDir string, appID int) (App, bool) {
	if app, ok := ReadAppManifest(fs, mainSteamAppsDir, appID); ok {
		return app, true
	}

	for _, lib := range libraryFolders(fs, mainSteamAppsDir, appID) {
		if lib == mainSteamAppsDir {
			continue
		}
		if app, ok := ReadAppManifest(fs, lib, appID); ok {
			return app, true
		}
	}
	return App{}, false
}

// libraryFolders returns the steamapps directories of the libraries that
// list appID, or of every library when a folder has no app list.
func libraryFolders(fs afero.Fs, mainSteamAppsDir string, appID int) []string {
	m, err := vdfutil.ParseFile(fs, filepath.Join(mainSteamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("failed to read libraryfolders.vdf")
		return nil
	}

	lfs, ok := vdfutil.Map(m, "libraryfolders")
	if !ok {
		return nil
	}

	appIDStr := strconv.Itoa(appID)
	var dirs []string
	for _, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			continue
		}

		if apps, ok := ls["apps"].(map[string]any); ok {
			if _, hasApp := apps[appIDStr]; !hasApp {
				continue
			}
		}

		libraryPath, ok := ls["path"].(string)
		if !ok {
			continue
		}
		dirs = append(dirs, filepath.Join(libraryPath, "steamapps"))
	}
	return dirs
}
