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

package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// DefaultPgrep is the pgrep command.
const DefaultPgrep = "pgrep"

// Process query backends selectable from config.
const (
	QueryNative = "native"
	QueryPgrep  = "pgrep"
)

var ErrUnknownQuery = errors.New("unknown process query")

// ProcessQuery reports whether any process command line contains pattern.
type ProcessQuery interface {
	Running(ctx context.Context, pattern string) (bool, error)
}

// NewProcessQuery returns the backend named by kind. pgrepBin and cmd are
// only used by the pgrep backend.
func NewProcessQuery(kind, pgrepBin string, cmd command.Executor) (ProcessQuery, error) {
	switch kind {
	case "", QueryNative:
		return Native{}, nil
	case QueryPgrep:
		return NewPgrepWithExecutor(pgrepBin, cmd), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, kind)
	}
}

// Pgrep matches full command lines with pgrep -f.
type Pgrep struct {
	cmd command.Executor
	bin string
}

// NewPgrepWithExecutor creates a Pgrep with a custom command executor.
func NewPgrepWithExecutor(bin string, cmd command.Executor) *Pgrep {
	if bin == "" {
		bin = DefaultPgrep
	}
	return &Pgrep{bin: bin, cmd: cmd}
}

// Running runs pgrep -f pattern. Any output means at least one match; exit
// status 1 means none.
func (p *Pgrep) Running(ctx context.Context, pattern string) (bool, error) {
	out, err := p.cmd.Output(ctx, p.bin, "-f", pattern)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run %s -f %s: %w", p.bin, pattern, err)
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// Native scans the process table with gopsutil. Our own process is skipped
// so a pattern appearing in our arguments does not match itself.
type Native struct{}

// Running reports whether another process's command line contains pattern.
func (Native) Running(ctx context.Context, pattern string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}

	self := int32(os.Getpid()) //nolint:gosec // PIDs fit in int32
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil {
			// processes exit while we scan
			log.Trace().Err(err).Int32("pid", p.Pid).Msg("skipping process")
			continue
		}
		if strings.Contains(cmdline, pattern) {
			return true, nil
		}
	}
	return false, nil
}
