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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestReadProject(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ws/1/project.json",
		[]byte(`{"title":"Rainy Night","description":"Lo-fi rain","file":"scene.json"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/ws/2/project.json", []byte(`{"title":`), 0o644))

	p, err := ReadProject(fs, "/ws/1")
	require.NoError(t, err)
	require.NotNil(t, p.Title)
	assert.Equal(t, "Rainy Night", *p.Title)
	require.NotNil(t, p.Description)
	assert.Equal(t, "Lo-fi rain", *p.Description)

	_, err = ReadProject(fs, "/ws/2")
	require.Error(t, err)

	_, err = ReadProject(fs, "/ws/3")
	require.Error(t, err)
}

func TestPrintInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		project Project
		name    string
		want    string
	}{
		{
			name:    "title_and_description",
			project: Project{Title: strPtr("Rain"), Description: strPtr("Calm")},
			want:    "## Rain\n\nCalm\n",
		},
		{name: "title_only", project: Project{Title: strPtr("Rain")}, want: "## Rain\n"},
		{name: "description_only", project: Project{Description: strPtr("Calm")}, want: "Calm\n"},
		{name: "empty", project: Project{}, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, PrintInfo(&buf, &tt.project))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
