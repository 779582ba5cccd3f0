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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	testhelpers "github.com/Kyza/wallpaper-engine-xwayland/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreviewerShow(t *testing.T) {
	t.Parallel()

	t.Run("jpg_preferred", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/ws/1/preview.jpg", []byte{0xff}, 0o644))
		require.NoError(t, afero.WriteFile(fs, "/ws/1/preview.gif", []byte("GIF"), 0o644))

		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("Output", mock.Anything, "chafa",
			[]string{"--symbols=block", "--fill=block", "--size=40x20", "/ws/1/preview.jpg"}).
			Return([]byte("▀▄\n"), nil)

		var buf bytes.Buffer
		err := NewPreviewerWithExecutor(fs, "", "", mockCmd).Show(context.Background(), &buf, "/ws/1")
		require.NoError(t, err)
		assert.Equal(t, "▀▄\n", buf.String())
		mockCmd.AssertExpectations(t)
		mockCmd.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gif_first_frame", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/ws/2/preview.gif", []byte("GIF"), 0o644))

		var frame string
		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("Run", mock.Anything, "/usr/bin/magick", mock.MatchedBy(func(args []string) bool {
			if len(args) != 2 || args[0] != "/ws/2/preview.gif[0]" || !strings.HasSuffix(args[1], ".png") {
				return false
			}
			frame = args[1]
			return true
		})).Return(nil)
		mockCmd.On("Output", mock.Anything, "/usr/bin/chafa", mock.Anything).Return([]byte("art"), nil)

		var buf bytes.Buffer
		p := NewPreviewerWithExecutor(fs, "/usr/bin/chafa", "/usr/bin/magick", mockCmd)
		require.NoError(t, p.Show(context.Background(), &buf, "/ws/2"))

		assert.Equal(t, "art", buf.String())
		mockCmd.AssertCalled(t, "Output", mock.Anything, "/usr/bin/chafa",
			[]string{"--symbols=block", "--fill=block", "--size=40x20", frame})
	})

	t.Run("magick_failure", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/ws/3/preview.gif", []byte("GIF"), 0o644))

		magickErr := errors.New("no delegate")
		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("Run", mock.Anything, "magick", mock.Anything).Return(magickErr)

		err := NewPreviewerWithExecutor(fs, "", "", mockCmd).Show(context.Background(), &bytes.Buffer{}, "/ws/3")
		require.ErrorIs(t, err, magickErr)
		mockCmd.AssertNotCalled(t, "Output", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no_preview", func(t *testing.T) {
		t.Parallel()

		mockCmd := testhelpers.NewMockCommandExecutor()
		var buf bytes.Buffer
		err := NewPreviewerWithExecutor(afero.NewMemMapFs(), "", "", mockCmd).
			Show(context.Background(), &buf, "/ws/4")

		require.NoError(t, err)
		assert.Equal(t, "No preview image found in /ws/4\n", buf.String())
		mockCmd.AssertNotCalled(t, "Output", mock.Anything, mock.Anything, mock.Anything)
	})
}
