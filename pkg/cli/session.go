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

package cli

import (
	"fmt"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/compat"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/steam"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/wallpaper"
	"github.com/rs/zerolog/log"
)

// session is the Steam installation and app layout one command works on.
type session struct {
	resolver *compat.Resolver
	paths    steam.Paths
	app      steam.AppPaths
	appID    int
}

func (a *App) newSession() (*session, error) {
	root, err := steam.FindRoot(a.Fs, a.Home, a.cfg.SteamInstallDir())
	if err != nil {
		return nil, err
	}

	paths := steam.NewPaths(root)
	appID := a.cfg.AppID()
	app := paths.ForApp(a.Fs, appID, wallpaper.DefaultInstallDir)
	log.Debug().
		Str("root", root).
		Str("install", app.Install).
		Str("workshop", app.Workshop).
		Msg("found steam layout")

	return &session{
		resolver: compat.NewResolver(a.Fs, paths.Common(), paths.CompatTools()),
		paths:    paths,
		app:      app,
		appID:    appID,
	}, nil
}

// target is a resolved compatibility tool and renderer executable.
type target struct {
	tool       *compat.Tool
	executable string
	name       compat.InternalName
}

func (s *session) resolveTarget(a *App, protonFlag, archFlag string) (*target, error) {
	proton := first(protonFlag, a.cfg.ProtonVersion())
	if proton == "" {
		return nil, fmt.Errorf("%w: --proton-version", ErrMissingFlag)
	}
	archValue := first(archFlag, a.cfg.Arch())
	if archValue == "" {
		return nil, fmt.Errorf("%w: --arch", ErrMissingFlag)
	}

	arch, err := wallpaper.ParseArch(archValue)
	if err != nil {
		return nil, err
	}

	tool, err := s.resolver.Resolve(proton)
	if err != nil {
		return nil, err
	}

	exe, err := wallpaper.Executable(a.Fs, s.app.Install, arch)
	if err != nil {
		return nil, err
	}

	return &target{tool: tool, name: tool.InternalName(), executable: exe}, nil
}

func (s *session) launchEnv(t *target) compat.LaunchEnv {
	return compat.LaunchEnv{
		ProtonDir:         t.tool.Path,
		CompatDataPath:    s.app.CompatData,
		ClientInstallPath: s.paths.Root,
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
