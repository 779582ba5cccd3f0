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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Arch
		wantErr bool
	}{
		{in: "64", want: Arch64},
		{in: "32", want: Arch32},
		{in: "x64", wantErr: true},
		{in: " 64", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("arch_"+tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseArch(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "wallpaper64.exe", Arch64.Image())
	assert.Equal(t, "wallpaper32.exe", Arch32.Image())
	assert.ElementsMatch(t, []string{"wallpaper32.exe", "wallpaper64.exe"}, ImageNames())
}

func TestExecutable(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/we/wallpaper64.exe", []byte("MZ"), 0o644))

	path, err := Executable(fs, "/we", Arch64)
	require.NoError(t, err)
	assert.Equal(t, "/we/wallpaper64.exe", path)

	_, err = Executable(fs, "/we", Arch32)
	require.ErrorIs(t, err, ErrRendererNotFound)
	assert.Contains(t, err.Error(), "/we/wallpaper32.exe")
}
