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

package desktop

import (
	"context"
	"errors"
	"testing"

	testhelpers "github.com/Kyza/wallpaper-engine-xwayland/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeQuery struct {
	err     error
	running map[string]bool
	asked   []string
}

func (f *fakeQuery) Running(_ context.Context, pattern string) (bool, error) {
	f.asked = append(f.asked, pattern)
	return f.running[pattern], f.err
}

func TestProbeRendererRunning(t *testing.T) {
	t.Parallel()

	images := []string{"wallpaper64.exe", "wallpaper32.exe"}

	t.Run("either_image_counts", func(t *testing.T) {
		t.Parallel()

		q := &fakeQuery{running: map[string]bool{"wallpaper32.exe": true}}
		p := &Probe{Processes: q, RendererImages: images}

		running, err := p.RendererRunning(context.Background())
		require.NoError(t, err)
		assert.True(t, running)
		assert.Equal(t, images, q.asked)
	})

	t.Run("none_running", func(t *testing.T) {
		t.Parallel()

		p := &Probe{Processes: &fakeQuery{}, RendererImages: images}

		running, err := p.RendererRunning(context.Background())
		require.NoError(t, err)
		assert.False(t, running)
	})

	t.Run("query_error", func(t *testing.T) {
		t.Parallel()

		queryErr := errors.New("proc unavailable")
		p := &Probe{Processes: &fakeQuery{err: queryErr}, RendererImages: images}

		_, err := p.RendererRunning(context.Background())
		require.ErrorIs(t, err, queryErr)
	})
}

func TestProbeWindows(t *testing.T) {
	t.Parallel()

	mockCmd := testhelpers.NewMockCommandExecutor()
	mockCmd.ExpectedCalls = nil
	mockCmd.On("Run", mock.Anything, "xdotool", []string{"search", "--class", "steamwebhelper"}).Return(nil)
	mockCmd.On("Run", mock.Anything, "xdotool", []string{"search", "--name", "Wallpaper #1"}).
		Return(testhelpers.ExitError())

	p := &Probe{Windows: NewWindowsWithExecutor("", mockCmd), PlatformClass: "steamwebhelper"}

	up, err := p.PlatformRunning(context.Background())
	require.NoError(t, err)
	assert.True(t, up)

	exists, err := p.WindowExists(context.Background(), "Wallpaper #1")
	require.NoError(t, err)
	assert.False(t, exists)
}
