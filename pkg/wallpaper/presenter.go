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

package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Presenter prints a workshop item's metadata and, when a Previewer is
// set, its preview.
type Presenter struct {
	Fs        afero.Fs
	Out       io.Writer
	Previewer *Previewer
}

// Present shows the item stored in dir. A missing project.json prints
// nothing.
func (p *Presenter) Present(ctx context.Context, dir string) error {
	project, err := ReadProject(p.Fs, dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("dir", dir).Msg("no project file")
	case err != nil:
		log.Warn().Err(err).Str("dir", dir).Msg("skipping project info")
	default:
		if err := PrintInfo(p.Out, project); err != nil {
			return err
		}
	}

	if p.Previewer == nil {
		return nil
	}
	if err := p.Previewer.Show(ctx, p.Out, dir); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
