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

package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

const (
	PathPolicyAuto   = "auto"
	PathPolicyDirect = "direct"

	DefaultWindowWait   = "20s"
	DefaultPollInterval = "100ms"
)

type Launch struct {
	// ProtonVersion is the default compatibility tool folder name.
	ProtonVersion string `toml:"proton_version,omitempty"`
	PathPolicy    string `toml:"path_policy" validate:"oneof=auto direct"`
	// WindowWait of "0" waits for windows forever.
	WindowWait   string `toml:"window_wait" validate:"required,duration,nonnegative_duration"`
	PollInterval string `toml:"poll_interval" validate:"required,duration,positive_duration"`
	ProcessQuery string `toml:"process_query" validate:"oneof=native pgrep"`
}

func (c *Instance) ProtonVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launch.ProtonVersion
}

func (c *Instance) PathPolicy() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launch.PathPolicy
}

// WindowWait returns how long to wait for each wallpaper window. Zero
// means no limit.
func (c *Instance) WindowWait() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Launch.WindowWait, DefaultWindowWait)
}

func (c *Instance) PollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Launch.PollInterval, DefaultPollInterval)
}

func (c *Instance) ProcessQuery() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launch.ProcessQuery
}

func parseDuration(s, fallback string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Err(err).Msgf("invalid duration %q, using %s", s, fallback)
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
