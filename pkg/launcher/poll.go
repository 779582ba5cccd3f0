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
	"context"
	"time"
)

// poll calls check once per poll interval until it reports true. With a
// positive limit it gives up, returning false, at the first check made at
// or after limit has elapsed. A zero limit polls until ctx is done.
func (l *Launcher) poll(
	ctx context.Context,
	limit time.Duration,
	check func(context.Context) (bool, error),
) (bool, error) {
	start := l.deps.Clock.Now()
	for {
		ok, err := check(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if limit > 0 && l.deps.Clock.Since(start) >= limit {
			return false, nil
		}
		if err := l.sleep(ctx); err != nil {
			return false, err
		}
	}
}

// sleep waits one poll interval or until ctx is done.
func (l *Launcher) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.deps.Clock.After(l.opts.PollInterval):
		return nil
	}
}
