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
	"context"
	"errors"
	"testing"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
	testhelpers "github.com/Kyza/wallpaper-engine-xwayland/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientStop(t *testing.T) {
	t.Parallel()

	mockCmd := testhelpers.NewMockCommandExecutor()
	client := NewClientWithExecutor("", mockCmd)

	require.NoError(t, client.Stop(context.Background(), WallpaperEngineAppID))

	mockCmd.AssertCalled(t, "Run", mock.Anything, "steam", []string{"+app_stop", "431960"})
}

func TestClientSetCompatTool(t *testing.T) {
	t.Parallel()

	t.Run("passes_internal_name", func(t *testing.T) {
		t.Parallel()

		mockCmd := testhelpers.NewMockCommandExecutor()
		client := NewClientWithExecutor("/usr/bin/steam", mockCmd)

		require.NoError(t, client.SetCompatTool(context.Background(), WallpaperEngineAppID, "proton_9"))

		mockCmd.AssertCalled(t, "Run", mock.Anything, "/usr/bin/steam",
			[]string{"+app_change_compat_tool", "431960", "proton_9"})
	})

	t.Run("non_zero_exit_is_not_fatal", func(t *testing.T) {
		t.Parallel()

		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("Run", mock.Anything, "steam", mock.Anything).Return(testhelpers.ExitError())
		client := NewClientWithExecutor("steam", mockCmd)

		assert.NoError(t, client.SetCompatTool(context.Background(), WallpaperEngineAppID, "proton_9"))
	})

	t.Run("spawn_failure_is_fatal", func(t *testing.T) {
		t.Parallel()

		spawnErr := errors.New("exec: \"steam\": executable file not found in $PATH")
		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("Run", mock.Anything, "steam", mock.Anything).Return(spawnErr)
		client := NewClientWithExecutor("steam", mockCmd)

		err := client.SetCompatTool(context.Background(), WallpaperEngineAppID, "proton_9")
		require.ErrorIs(t, err, spawnErr)
		assert.Contains(t, err.Error(), "+app_change_compat_tool")
	})
}

func TestClientLaunch(t *testing.T) {
	t.Parallel()

	t.Run("detached_applaunch", func(t *testing.T) {
		t.Parallel()

		mockCmd := testhelpers.NewMockCommandExecutor()
		client := NewClientWithExecutor("steam", mockCmd)

		err := client.Launch(context.Background(), WallpaperEngineAppID, "-nobrowse", "-width", "1920")
		require.NoError(t, err)

		mockCmd.AssertCalled(t, "StartWithOptions", mock.Anything,
			command.StartOptions{Detach: true}, "steam",
			[]string{"-applaunch", "431960", "-nobrowse", "-width", "1920"})
	})

	t.Run("start_failure", func(t *testing.T) {
		t.Parallel()

		startErr := errors.New("boom")
		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("StartWithOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(startErr)
		client := NewClientWithExecutor("steam", mockCmd)

		err := client.Launch(context.Background(), WallpaperEngineAppID)
		require.ErrorIs(t, err, startErr)
	})
}
