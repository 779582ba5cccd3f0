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
	"path/filepath"
	"testing"

	testhelpers "github.com/Kyza/wallpaper-engine-xwayland/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	t.Parallel()

	p := NewPaths("/home/user/.steam/steam")

	assert.Equal(t, "/home/user/.steam/steam/steamapps", p.SteamApps())
	assert.Equal(t, "/home/user/.steam/steam/steamapps/common", p.Common())
	assert.Equal(t, "/home/user/.steam/steam/compatibilitytools.d", p.CompatTools())
	assert.Equal(t, "/home/user/.steam/steam/steamapps/compatdata/431960", p.CompatData(WallpaperEngineAppID))
	assert.Equal(t,
		"/home/user/.steam/steam/steamapps/workshop/content/431960",
		p.WorkshopContent(WallpaperEngineAppID),
	)
}

func TestFindRoot(t *testing.T) {
	t.Parallel()

	home := "/home/user"

	t.Run("override_wins", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/mnt/steam", 0o750))
		require.NoError(t, fs.MkdirAll(filepath.Join(home, ".steam", "steam"), 0o750))

		root, err := FindRoot(fs, home, "/mnt/steam")
		require.NoError(t, err)
		assert.Equal(t, "/mnt/steam", root)
	})

	t.Run("missing_override_falls_back", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll(filepath.Join(home, ".local", "share", "Steam"), 0o750))

		root, err := FindRoot(fs, home, "/mnt/missing")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "Steam"), root)
	})

	t.Run("native_before_flatpak", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		flatpak := filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam")
		require.NoError(t, fs.MkdirAll(flatpak, 0o750))
		require.NoError(t, fs.MkdirAll(filepath.Join(home, ".steam", "steam"), 0o750))

		root, err := FindRoot(fs, home, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".steam", "steam"), root)
	})

	t.Run("flatpak_only", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		flatpak := filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam")
		require.NoError(t, fs.MkdirAll(flatpak, 0o750))

		root, err := FindRoot(fs, home, "")
		require.NoError(t, err)
		assert.Equal(t, flatpak, root)
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		_, err := FindRoot(afero.NewMemMapFs(), home, "")
		require.ErrorIs(t, err, ErrSteamNotFound)
	})
}

func TestForApp(t *testing.T) {
	t.Parallel()

	const root = "/steam"

	t.Run("secondary_library_from_libraryfolders", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		p := NewPaths(root)
		require.NoError(t, h.WriteFile(filepath.Join(p.SteamApps(), "libraryfolders.vdf"), `"libraryfolders"
{
	"0"
	{
		"path"		"/steam"
		"apps"
		{
			"228980"		"0"
		}
	}
	"1"
	{
		"path"		"/mnt/games"
		"apps"
		{
			"431960"		"123"
		}
	}
}
`))
		require.NoError(t, h.WriteFile("/mnt/games/steamapps/appmanifest_431960.acf", `"AppState"
{
	"appid"		"431960"
	"name"		"Wallpaper Engine"
	"installdir"		"wallpaper_engine"
}
`))

		got := p.ForApp(h.Fs, WallpaperEngineAppID, "fallback")

		assert.Equal(t, "/mnt/games/steamapps/common/wallpaper_engine", got.Install)
		assert.Equal(t, "/mnt/games/steamapps/compatdata/431960", got.CompatData)
		assert.Equal(t, "/mnt/games/steamapps/workshop/content/431960", got.Workshop)
	})

	t.Run("main_library_manifest", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		p := NewPaths(root)
		require.NoError(t, h.WriteFile(filepath.Join(p.SteamApps(), "appmanifest_431960.acf"), `"AppState"
{
	"name"		"Wallpaper Engine"
	"installdir"		"WE"
}
`))

		got := p.ForApp(h.Fs, WallpaperEngineAppID, "fallback")

		assert.Equal(t, "/steam/steamapps/common/WE", got.Install)
	})

	t.Run("falls_back_without_manifest", func(t *testing.T) {
		t.Parallel()

		p := NewPaths(root)
		got := p.ForApp(afero.NewMemMapFs(), WallpaperEngineAppID, "wallpaper_engine")

		assert.Equal(t, "/steam/steamapps/common/wallpaper_engine", got.Install)
		assert.Equal(t, p.CompatData(WallpaperEngineAppID), got.CompatData)
		assert.Equal(t, p.WorkshopContent(WallpaperEngineAppID), got.Workshop)
	})
}

func TestReadAppManifest(t *testing.T) {
	t.Parallel()

	t.Run("missing_name", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.WriteFile("/lib/appmanifest_1.acf", `"AppState"
{
	"installdir"		"x"
}
`))

		_, ok := ReadAppManifest(h.Fs, "/lib", 1)
		assert.False(t, ok)
	})

	t.Run("dir", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.WriteFile("/lib/appmanifest_1.acf", `"AppState"
{
	"name"		"Game"
	"installdir"		"game_dir"
}
`))

		app, ok := ReadAppManifest(h.Fs, "/lib", 1)
		require.True(t, ok)
		assert.Equal(t, "Game", app.Name)
		assert.Equal(t, 1, app.ID)
		assert.Equal(t, "/lib/common/game_dir", app.Dir())
	})
}
