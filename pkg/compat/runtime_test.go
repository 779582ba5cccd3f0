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

package compat

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

func TestRuntimeRun(t *testing.T) {
	t.Parallel()

	env := LaunchEnv{ProtonDir: "/tools/GE", CompatDataPath: "/data", ClientInstallPath: "/steam"}

	t.Run("starts_detached_with_launch_env", func(t *testing.T) {
		t.Parallel()

		mockCmd := testhelpers.NewMockCommandExecutor()
		rt := NewRuntimeWithExecutor("/tools/GE/proton", env, mockCmd)

		err := rt.Run(context.Background(), "/games/wallpaper64.exe", "-nobrowse", "-control", "stop")
		require.NoError(t, err)

		mockCmd.AssertCalled(t, "StartWithOptions",
			mock.Anything,
			mock.MatchedBy(func(opts command.StartOptions) bool {
				return opts.Detach &&
					assert.ObjectsAreEqual(opts.Env[len(opts.Env)-3:], env.Vars())
			}),
			"/tools/GE/proton",
			[]string{"run", "/games/wallpaper64.exe", "-nobrowse", "-control", "stop"},
		)
	})

	t.Run("wraps_spawn_error", func(t *testing.T) {
		t.Parallel()

		spawnErr := errors.New("exec: no such file")
		mockCmd := testhelpers.NewMockCommandExecutor()
		mockCmd.ExpectedCalls = nil
		mockCmd.On("StartWithOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(spawnErr)
		rt := NewRuntimeWithExecutor("/tools/GE/proton", env, mockCmd)

		err := rt.Run(context.Background(), "/games/wallpaper64.exe")

		require.ErrorIs(t, err, spawnErr)
		assert.Contains(t, err.Error(), "/tools/GE/proton")
	})

	t.Run("exposes_entry_point", func(t *testing.T) {
		t.Parallel()

		rt := NewRuntimeWithExecutor("/tools/GE/proton", env, testhelpers.NewMockCommandExecutor())

		assert.Equal(t, "/tools/GE/proton", rt.Entry())
	})
}
