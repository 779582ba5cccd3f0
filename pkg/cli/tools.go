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
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newToolsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List installed compatibility tools and the names Steam knows them by",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.newSession()
			if err != nil {
				return err
			}
			tools, err := s.resolver.List()
			if err != nil {
				return err
			}
			if len(tools) == 0 {
				app.printf("No compatibility tools found in %s or %s\n", s.paths.Common(), s.paths.CompatTools())
				return nil
			}

			tw := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "FOLDER\tINTERNAL NAME\tSOURCE\tLOCATION")
			for _, t := range tools {
				name := t.InternalName()
				location := "user"
				if t.Builtin {
					location = "builtin"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, name.Name, name.Source, location)
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("failed to write tool list: %w", err)
			}
			return nil
		},
	}
}
