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
	"time"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/compat"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/config"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/desktop"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/launcher"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/steam"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/wallpaper"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type launchFlags struct {
	protonVersion string
	arch          string
	wait          string
	wallpaperIDs  []string
	direct        bool
	noPreview     bool
}

func newLaunchCmd(app *App) *cobra.Command {
	var flags launchFlags

	cmd := &cobra.Command{
		Use:   config.AppName + " [flags] [wallpaper-id...]",
		Short: "Launch Wallpaper Engine wallpapers in X11 windows through Proton",
		Long: `Starts each workshop wallpaper in its own window titled "Wallpaper #<n>",
one after another, then stops Wallpaper Engine from rendering in the background.

Steam must already be running.

Examples:
  ` + config.AppName + ` -p "GE-Proton9-20" -a 64 -w 1234567890 -w 2345678901
  ` + config.AppName + ` -p "Proton 9.0" -a 64 1234567890`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := append(append([]string{}, flags.wallpaperIDs...), args...)
			return app.runLaunch(cmd, &flags, ids)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.protonVersion, "proton-version", "p", "",
		"compatibility tool folder name, e.g. \"Proton 9.0\" or \"GE-Proton9-20\"")
	f.StringVarP(&flags.arch, "arch", "a", "", "Wallpaper Engine architecture, 64 or 32")
	f.StringArrayVarP(&flags.wallpaperIDs, "wallpaper-ids", "w", nil, "workshop wallpaper id, repeatable")
	f.BoolVar(&flags.direct, "direct", false, "always start through Proton instead of Steam")
	f.StringVar(&flags.wait, "wait", "", "how long to wait for each window, 0 waits forever (default from config)")
	f.BoolVar(&flags.noPreview, "no-preview", false, "do not render wallpaper previews")

	return cmd
}

func (a *App) runLaunch(cmd *cobra.Command, flags *launchFlags, ids []string) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}

	items, err := launcher.NewItems(ids, s.app.Workshop)
	if err != nil {
		return err
	}

	t, err := s.resolveTarget(a, flags.protonVersion, flags.arch)
	if err != nil {
		return err
	}
	a.printf("Using %s as %s\n", t.tool, t.name.Name)
	if !t.name.Confident() {
		log.Warn().Str("tool", t.tool.Name).Msg("internal name is a guess, steam may reject it")
	}

	opts, err := a.launchOptions(s, t, flags)
	if err != nil {
		return err
	}

	deps, err := a.launchDeps(s, t, flags)
	if err != nil {
		return err
	}

	log.Info().
		Int("items", len(items)).
		Stringer("policy", opts.PathPolicy).
		Stringer("wait", opts.WindowWait).
		Msg("launching wallpapers")

	if err := launcher.New(deps, opts).Run(cmd.Context(), items); err != nil {
		return fmt.Errorf("launch failed: %w", err)
	}
	return nil
}

func (a *App) launchOptions(s *session, t *target, flags *launchFlags) (launcher.Options, error) {
	policy := launcher.PathDirect
	if !flags.direct {
		var err error
		policy, err = launcher.ParsePathPolicy(a.cfg.PathPolicy())
		if err != nil {
			return launcher.Options{}, err
		}
	}

	wait := a.cfg.WindowWait()
	if flags.wait != "" {
		d, err := time.ParseDuration(flags.wait)
		if err != nil || d < 0 {
			return launcher.Options{}, fmt.Errorf("invalid --wait %q: must be a duration such as 20s, or 0", flags.wait)
		}
		wait = d
	}

	windowWait := launcher.WaitUnbounded()
	if wait > 0 {
		windowWait = launcher.WaitBounded(wait)
	}

	return launcher.Options{
		AppID:        s.appID,
		Executable:   t.executable,
		CompatTool:   t.name.Name,
		Width:        a.cfg.Width(),
		Height:       a.cfg.Height(),
		PathPolicy:   policy,
		WindowWait:   windowWait,
		PollInterval: a.cfg.PollInterval(),
	}, nil
}

func (a *App) launchDeps(s *session, t *target, flags *launchFlags) (launcher.Deps, error) {
	steamBin, err := a.lookPath(steam.DefaultBinary)
	if err != nil {
		return launcher.Deps{}, err
	}
	xdotool, err := a.lookPath(desktop.DefaultXdotool)
	if err != nil {
		return launcher.Deps{}, err
	}

	var pgrep string
	if a.cfg.ProcessQuery() == desktop.QueryPgrep {
		pgrep, err = a.lookPath(desktop.DefaultPgrep)
		if err != nil {
			return launcher.Deps{}, err
		}
	}
	processes, err := desktop.NewProcessQuery(a.cfg.ProcessQuery(), pgrep, a.Exec)
	if err != nil {
		return launcher.Deps{}, err
	}

	deps := launcher.Deps{
		Platform: steam.NewClientWithExecutor(steamBin, a.Exec),
		Runtime:  compat.NewRuntimeWithExecutor(t.tool.Entry, s.launchEnv(t), a.Exec),
		Probe: &desktop.Probe{
			Windows:        desktop.NewWindowsWithExecutor(xdotool, a.Exec),
			Processes:      processes,
			PlatformClass:  steam.WebHelperWindowClass,
			RendererImages: wallpaper.ImageNames(),
		},
		Clock: a.Clock,
		Out:   a.Out,
	}

	presenter := &wallpaper.Presenter{Fs: a.Fs, Out: a.Out}
	if a.cfg.PreviewEnabled() && !flags.noPreview {
		presenter.Previewer = a.previewer()
	}
	deps.Presenter = presenter

	return deps, nil
}

// previewer returns nil when chafa is not installed. ImageMagick is only
// needed for animated previews, so its absence is left to fail per item.
func (a *App) previewer() *wallpaper.Previewer {
	chafa, err := a.lookPath(wallpaper.DefaultChafa)
	if err != nil {
		log.Warn().Err(err).Msg("previews disabled")
		return nil
	}
	magick, err := a.lookPath(wallpaper.DefaultMagick)
	if err != nil {
		log.Debug().Err(err).Msg("animated previews unavailable")
		magick = wallpaper.DefaultMagick
	}
	return wallpaper.NewPreviewerWithExecutor(a.Fs, chafa, magick, a.Exec)
}
