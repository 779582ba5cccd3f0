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
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectFile is the metadata file of a workshop item.
const ProjectFile = "project.json"

// Project is the subset of project.json shown to the user.
type Project struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ReadProject reads dir/project.json.
func ReadProject(fs afero.Fs, dir string) (*Project, error) {
	data, err := afero.ReadFile(fs, filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}
	return &p, nil
}

// PrintInfo writes the title as a markdown heading and the description
// below it, separated by a blank line when both are present.
func PrintInfo(w io.Writer, p *Project) error {
	if p.Title != nil {
		if _, err := fmt.Fprintf(w, "## %s\n", *p.Title); err != nil {
			return fmt.Errorf("failed to write title: %w", err)
		}
	}
	if p.Description != nil {
		if p.Title != nil {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, *p.Description); err != nil {
			return fmt.Errorf("failed to write description: %w", err)
		}
	}
	return nil
}
