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
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/wallpaper"
)

// Item is one workshop wallpaper scheduled for launch.
type Item struct {
	ID    string
	Title string
	// Dir is the item's workshop content directory.
	Dir   string
	Index int
}

// ProjectFile returns the item's project.json path.
func (i Item) ProjectFile() string {
	return filepath.Join(i.Dir, wallpaper.ProjectFile)
}

// Title returns the window title used for the wallpaper at index.
func Title(index int) string {
	return fmt.Sprintf("Wallpaper #%d", index)
}

// NewItems builds the launch list from workshop IDs in order. Titles are
// numbered from zero.
func NewItems(ids []string, workshopDir string) ([]Item, error) {
	if len(ids) == 0 {
		return nil, ErrNoItems
	}

	items := make([]Item, 0, len(ids))
	for i, id := range ids {
		if err := validateID(id); err != nil {
			return nil, err
		}
		items = append(items, Item{
			ID:    id,
			Index: i,
			Title: Title(i),
			Dir:   filepath.Join(workshopDir, id),
		})
	}
	return items, nil
}

// validateID accepts positive decimal workshop IDs only, which also keeps
// IDs from escaping the workshop directory.
func validateID(id string) error {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidItemID, id)
	}
	return nil
}
