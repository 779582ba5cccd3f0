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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	DefaultChafa  = "chafa"
	DefaultMagick = "magick"

	previewJPG = "preview.jpg"
	previewGIF = "preview.gif"
)

var chafaArgs = []string{"--symbols=block", "--fill=block", "--size=40x20"}

// Previewer renders a workshop item's preview image as terminal art with
// chafa. Animated previews are reduced to their first frame with
// ImageMagick first.
type Previewer struct {
	fs     afero.Fs
	cmd    command.Executor
	chafa  string
	magick string
	tmpDir string
}

// NewPreviewerWithExecutor creates a Previewer with a custom command executor.
func NewPreviewerWithExecutor(fs afero.Fs, chafa, magick string, cmd command.Executor) *Previewer {
	if chafa == "" {
		chafa = DefaultChafa
	}
	if magick == "" {
		magick = DefaultMagick
	}
	return &Previewer{
		fs:     fs,
		cmd:    cmd,
		chafa:  chafa,
		magick: magick,
		tmpDir: os.TempDir(),
	}
}

// Show writes the preview of dir to w. preview.jpg is preferred over
// preview.gif. A missing preview is reported on w and is not an error.
func (p *Previewer) Show(ctx context.Context, w io.Writer, dir string) error {
	jpg := filepath.Join(dir, previewJPG)
	gif := filepath.Join(dir, previewGIF)

	switch {
	case p.exists(jpg):
		return p.render(ctx, w, jpg)
	case p.exists(gif):
		return p.renderFirstFrame(ctx, w, gif)
	default:
		_, err := fmt.Fprintf(w, "No preview image found in %s\n", dir)
		if err != nil {
			return fmt.Errorf("failed to write preview message: %w", err)
		}
		return nil
	}
}

func (p *Previewer) renderFirstFrame(ctx context.Context, w io.Writer, gif string) error {
	frame := filepath.Join(p.tmpDir, "wallpaper-preview-"+uuid.New().String()+".png")
	defer func() {
		if err := p.fs.Remove(frame); err != nil && !os.IsNotExist(err) {
			log.Debug().Err(err).Str("path", frame).Msg("failed to remove preview frame")
		}
	}()

	if err := p.cmd.Run(ctx, p.magick, gif+"[0]", frame); err != nil {
		return fmt.Errorf("failed to extract first frame of %s: %w", gif, err)
	}
	return p.render(ctx, w, frame)
}

func (p *Previewer) render(ctx context.Context, w io.Writer, image string) error {
	args := append(append([]string{}, chafaArgs...), image)
	out, err := p.cmd.Output(ctx, p.chafa, args...)
	if err != nil {
		return fmt.Errorf("failed to render preview %s: %w", image, err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

func (p *Previewer) exists(path string) bool {
	info, err := p.fs.Stat(path)
	return err == nil && !info.IsDir()
}
