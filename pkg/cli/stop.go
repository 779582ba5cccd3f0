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
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/wallpaper"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	var protonVersion, arch string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Tell a running Wallpaper Engine to stop rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.newSession()
			if err != nil {
				return err
			}
			t, err := s.resolveTarget(app, protonVersion, arch)
			if err != nil {
				return err
			}

			rt := compat.NewRuntimeWithExecutor(t.tool.Entry, s.launchEnv(t), app.Exec)
			if err := rt.Run(cmd.Context(), t.executable, wallpaper.StopArgs()...); err != nil {
				return fmt.Errorf("failed to send stop command: %w", err)
			}
			app.printf("Stop command sent\n")
			return nil
		},
	}

	cmd.Flags().StringVarP(&protonVersion, "proton-version", "p", "", "compatibility tool folder name")
	cmd.Flags().StringVarP(&arch, "arch", "a", "", "Wallpaper Engine architecture, 64 or 32")
	return cmd
}
