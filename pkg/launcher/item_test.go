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

package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItems(t *testing.T) {
	t.Parallel()

	t.Run("ordered_titles_from_zero", func(t *testing.T) {
		t.Parallel()

		items, err := NewItems([]string{"2813", "1001", "2813"}, "/ws")
		require.NoError(t, err)
		require.Len(t, items, 3)

		for i, item := range items {
			assert.Equal(t, i, item.Index)
			assert.Equal(t, Title(i), item.Title)
		}
		assert.Equal(t, "Wallpaper #0", items[0].Title)
		assert.Equal(t, "/ws/1001", items[1].Dir)
		assert.Equal(t, "/ws/2813/project.json", items[2].ProjectFile())
	})

	t.Run("empty_list", func(t *testing.T) {
		t.Parallel()

		_, err := NewItems(nil, "/ws")
		require.ErrorIs(t, err, ErrNoItems)
	})

	for _, id := range []string{"", "0", "abc", "../etc", "-1", "12 3"} {
		id := id
		t.Run("rejects_"+id, func(t *testing.T) {
			t.Parallel()

			_, err := NewItems([]string{"1", id}, "/ws")
			require.ErrorIs(t, err, ErrInvalidItemID)
		})
	}
}
