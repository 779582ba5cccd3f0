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

// Package compat resolves Steam compatibility tools (Proton builds) by the
// folder name a user sees, and runs programs through them.
package compat

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// maxSuggestions caps the did-you-mean list of a NotFoundError.
	maxSuggestions = 3
	// minSuggestionSimilarity is the Jaro-Winkler floor for a suggestion.
	minSuggestionSimilarity = 0.7
)

var (
	ErrNotFound  = errors.New("compatibility tool not found")
	ErrEmptyName = errors.New("compatibility tool name is empty")
)

// NotFoundError reports a tool name missing from both tool locations.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("compatibility tool folder not found: %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(e.Suggestions), ", "))
	}
	return msg
}

func (*NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

// Tool is one resolved compatibility tool installation.
type Tool struct {
	// Name is the folder name as given by the user.
	Name string
	// Path is the directory the tool was resolved to.
	Path string
	// Entry is the runtime executable inside Path.
	Entry string
	// Builtin is true for tools shipped by Valve under steamapps/common.
	Builtin bool
}

func (t Tool) String() string {
	kind := "user"
	if t.Builtin {
		kind = "builtin"
	}
	return fmt.Sprintf("%s (%s, %s)", t.Name, kind, t.Path)
}

// Resolver looks tools up in Valve's common directory and the user's
// compatibilitytools.d directory.
type Resolver struct {
	fs          afero.Fs
	commonDir   string
	compatTools string
}

// NewResolver creates a resolver over the two tool locations.
func NewResolver(fs afero.Fs, commonDir, compatToolsDir string) *Resolver {
	return &Resolver{
		fs:          fs,
		commonDir:   commonDir,
		compatTools: compatToolsDir,
	}
}

// Resolve finds the tool folder called name. A user-installed folder wins
// over a built-in one with the same name.
func (r *Resolver) Resolve(name string) (*Tool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !isFolderName(name) {
		return nil, &NotFoundError{Name: name, Suggestions: r.suggest(name)}
	}

	commonPath := filepath.Join(r.commonDir, name)
	userPath := filepath.Join(r.compatTools, name)
	inCommon := r.isDir(commonPath)
	inUser := r.isDir(userPath)

	var tool *Tool
	switch {
	case inUser:
		if inCommon {
			log.Debug().Str("name", name).Msg("user-installed compatibility tool shadows built-in one")
		}
		tool = &Tool{Name: name, Path: userPath}
	case inCommon:
		tool = &Tool{Name: name, Path: commonPath, Builtin: true}
	default:
		return nil, &NotFoundError{Name: name, Suggestions: r.suggest(name)}
	}

	tool.Entry = entryPoint(r.fs, tool.Path)
	log.Debug().
		Str("name", tool.Name).
		Str("path", tool.Path).
		Bool("builtin", tool.Builtin).
		Str("entry", tool.Entry).
		Msg("resolved compatibility tool")
	return tool, nil
}

// isFolderName reports whether name is a single directory entry name.
func isFolderName(name string) bool {
	if name == "." || name == ".." || strings.ContainsRune(name, '/') {
		return false
	}
	return filepath.Base(name) == name
}

// List returns every tool found in both locations, sorted by name. Folders
// under common/ only count when they look like a compatibility tool.
func (r *Resolver) List() ([]Tool, error) {
	byName := make(map[string]Tool)

	common, err := r.subdirs(r.commonDir)
	if err != nil {
		return nil, err
	}
	for _, name := range common {
		path := filepath.Join(r.commonDir, name)
		if !looksLikeTool(r.fs, path) {
			continue
		}
		byName[name] = Tool{Name: name, Path: path, Entry: entryPoint(r.fs, path), Builtin: true}
	}

	user, err := r.subdirs(r.compatTools)
	if err != nil {
		return nil, err
	}
	for _, name := range user {
		path := filepath.Join(r.compatTools, name)
		byName[name] = Tool{Name: name, Path: path, Entry: entryPoint(r.fs, path)}
	}

	tools := make([]Tool, 0, len(byName))
	for _, t := range byName {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools, nil
}

func (r *Resolver) isDir(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (r *Resolver) subdirs(dir string) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// suggest ranks known tool names by similarity to name.
func (r *Resolver) suggest(name string) []string {
	tools, err := r.List()
	if err != nil {
		log.Debug().Err(err).Msg("failed to list compatibility tools for suggestions")
		return nil
	}

	type candidate struct {
		name       string
		similarity float32
	}
	var candidates []candidate
	query := strings.ToLower(name)
	for _, t := range tools {
		similarity := edlib.JaroWinklerSimilarity(query, strings.ToLower(t.Name))
		if similarity >= minSuggestionSimilarity {
			candidates = append(candidates, candidate{name: t.Name, similarity: similarity})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	var out []string
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		out = append(out, candidates[i].name)
	}
	return out
}
