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

import "fmt"

// State is a step of a launch run.
type State int

const (
	StateIdle State = iota
	StateAwaitingPlatform
	StateBindingCompatTool
	StateStoppingPriorInstance
	StateLaunching
	StateAwaitingWindow
	StateFinalStop
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:                  "idle",
	StateAwaitingPlatform:      "awaiting_platform",
	StateBindingCompatTool:     "binding_compat_tool",
	StateStoppingPriorInstance: "stopping_prior_instance",
	StateLaunching:             "launching",
	StateAwaitingWindow:        "awaiting_window",
	StateFinalStop:             "final_stop",
	StateDone:                  "done",
	StateFailed:                "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}
