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
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameSource tells how an InternalName was obtained.
type NameSource int

const (
	// SourceVerbatim is a user-installed tool referenced by its folder name.
	SourceVerbatim NameSource = iota
	// SourceDerived is a built-in tool whose name matched Valve's convention.
	SourceDerived
	// SourceFallback is a built-in tool whose name did not match; the value
	// is the plain snake-cased folder name and may be wrong.
	SourceFallback
)

func (s NameSource) String() string {
	switch s {
	case SourceVerbatim:
		return "verbatim"
	case SourceDerived:
		return "derived"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// InternalName is the identifier Steam's app_change_compat_tool expects.
type InternalName struct {
	Name   string
	Source NameSource
}

// Confident is false only for fallback names.
func (n InternalName) Confident() bool {
	return n.Source != SourceFallback
}

const protonPrefix = "proton_"

// vendorNameRegex extracts Valve's internal slug from a snake-cased
// built-in Proton folder name:
//
//	proton_experimental -> proton_experimental
//	proton_10_0         -> proton_10
//	proton_9_0_beta     -> proton_9
//	proton_4_11         -> proton_4_11 (underscores collapsed later)
//
// A ".0" minor version and a trailing beta/rc qualifier are not part of
// the slug.
var vendorNameRegex = regexp.MustCompile(
	`^(?P<name>proton_(?:\d+(?:_[1-9]\d*)?|[a-z][a-z0-9]*(?:_[a-z][a-z0-9]*)*?))` +
		`(?:_0+)?(?:_(?:beta|rc\d*))?$`,
)

var vendorNameGroup = vendorNameRegex.SubexpIndex("name")

// InternalName returns the name Steam uses for the tool. User-installed
// tools are referenced by folder name. Valve does not publish the names of
// its own Proton builds, so for those the name is derived from the folder
// name and may break with future Steam releases; a miss never fails and
// logs a warning instead.
func (t Tool) InternalName() InternalName {
	if !t.Builtin {
		return InternalName{Name: t.Name, Source: SourceVerbatim}
	}

	snake := snakeCase(t.Name)
	if name, ok := deriveVendorName(snake); ok {
		return InternalName{Name: name, Source: SourceDerived}
	}

	log.Warn().
		Str("tool", t.Name).
		Str("fallback", snake).
		Msg("built-in tool name does not match Steam's naming convention, continuing with snake case")
	return InternalName{Name: snake, Source: SourceFallback}
}

// deriveVendorName applies vendorNameRegex to a snake-cased name and keeps
// only the underscore after "proton".
func deriveVendorName(snake string) (string, bool) {
	m := vendorNameRegex.FindStringSubmatch(snake)
	if m == nil || m[vendorNameGroup] == "" {
		return "", false
	}
	rest := strings.TrimPrefix(m[vendorNameGroup], protonPrefix)
	return protonPrefix + strings.ReplaceAll(rest, "_", ""), true
}

// snakeCase lower-cases s and joins its words with underscores. Words break
// on anything that is not a letter or digit, on lower-to-upper case changes,
// at the end of an upper-case run followed by a lower-case letter, and
// between letters and digits.
func snakeCase(s string) string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			switch {
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && nextLower:
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	// A Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(strings.Join(words, "_"))
}
