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

// Package vdfutil reads Valve's text KeyValues (VDF) files with
// case-insensitive keys.
package vdfutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/spf13/afero"
)

// Parse parses a text VDF document and lowercases every key.
func Parse(r io.Reader) (map[string]any, error) {
	m, err := vdf.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse vdf: %w", err)
	}
	return NormalizeKeys(m), nil
}

// ParseFile opens path on fs and parses it with Parse.
func ParseFile(fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// NormalizeKeys recursively lowercases all keys in a map[string]any tree.
// Valve's VDF format is case-insensitive, but Go maps use exact string matching.
func NormalizeKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = NormalizeKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

// Map walks nested sections by key and returns the section at the end of the path.
func Map(m map[string]any, keys ...string) (map[string]any, bool) {
	cur := m
	for _, k := range keys {
		next, ok := cur[strings.ToLower(k)].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// String returns the string value at key inside the section reached by path.
func String(m map[string]any, key string, path ...string) (string, bool) {
	section, ok := Map(m, path...)
	if !ok {
		return "", false
	}
	s, ok := section[strings.ToLower(key)].(string)
	return s, ok
}
