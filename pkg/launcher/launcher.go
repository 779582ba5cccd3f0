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

// Package launcher starts a batch of Wallpaper Engine wallpapers one after
// another through Steam and Proton, each in its own titled window.
package launcher

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/wallpaper"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Platform is the Steam client.
type Platform interface {
	Stop(ctx context.Context, appID int) error
	SetCompatTool(ctx context.Context, appID int, internalName string) error
	Launch(ctx context.Context, appID int, args ...string) error
}

// Runtime starts Windows executables through the compatibility tool.
type Runtime interface {
	Run(ctx context.Context, exe string, args ...string) error
}

// Probe answers liveness questions about Steam, the renderer and windows.
type Probe interface {
	PlatformRunning(ctx context.Context) (bool, error)
	RendererRunning(ctx context.Context) (bool, error)
	WindowExists(ctx context.Context, title string) (bool, error)
}

// Presenter shows an item to the user before it is launched.
type Presenter interface {
	Present(ctx context.Context, dir string) error
}

// Deps are the collaborators of a Launcher. Presenter is optional.
type Deps struct {
	Platform  Platform
	Runtime   Runtime
	Probe     Probe
	Presenter Presenter
	Clock     clockwork.Clock
	Out       io.Writer
}

// Options configure one launch run.
type Options struct {
	// Executable is the renderer's path on the host.
	Executable string
	// CompatTool is the internal name bound to the app before launching.
	CompatTool   string
	AppID        int
	Width        int
	Height       int
	PathPolicy   PathPolicy
	WindowWait   WindowWait
	PollInterval time.Duration
}

// Launcher runs the launch state machine. A Launcher is used for one run.
type Launcher struct {
	deps  Deps
	opts  Options
	mu    sync.RWMutex
	state State
}

// New creates a Launcher. Zero clock, output, size and poll interval fall
// back to defaults.
func New(deps Deps, opts Options) *Launcher {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if opts.Width <= 0 {
		opts.Width = wallpaper.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = wallpaper.DefaultHeight
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Launcher{deps: deps, opts: opts, state: StateIdle}
}

// State returns the current state.
func (l *Launcher) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Launcher) setState(s State) {
	l.mu.Lock()
	prev := l.state
	l.state = s
	l.mu.Unlock()
	log.Debug().Stringer("from", prev).Stringer("to", s).Msg("launcher state changed")
}

// Run waits for Steam, binds the compatibility tool, stops any running
// renderer, launches every item in order waiting for its window, and
// finally tells the renderer to stop rendering in the background.
func (l *Launcher) Run(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	err := l.run(ctx, items)
	if err != nil {
		l.setState(StateFailed)
		return err
	}
	l.setState(StateDone)
	return nil
}

func (l *Launcher) run(ctx context.Context, items []Item) error {
	l.setState(StateAwaitingPlatform)
	if err := l.awaitPlatform(ctx); err != nil {
		return err
	}

	l.setState(StateBindingCompatTool)
	log.Info().Str("tool", l.opts.CompatTool).Int("appID", l.opts.AppID).Msg("setting compatibility tool")
	if err := l.deps.Platform.SetCompatTool(ctx, l.opts.AppID, l.opts.CompatTool); err != nil {
		return fmt.Errorf("failed to set compatibility tool: %w", err)
	}

	l.setState(StateStoppingPriorInstance)
	if err := l.stopPriorInstance(ctx); err != nil {
		return err
	}

	for _, item := range items {
		if err := l.launchItem(ctx, item); err != nil {
			return err
		}
	}

	l.setState(StateFinalStop)
	log.Info().Msg("stopping background rendering")
	if err := l.deps.Runtime.Run(ctx, l.opts.Executable, wallpaper.StopArgs()...); err != nil {
		return fmt.Errorf("failed to send stop command: %w", err)
	}
	return nil
}

func (l *Launcher) awaitPlatform(ctx context.Context) error {
	running, err := l.deps.Probe.PlatformRunning(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for steam: %w", err)
	}
	if running {
		return nil
	}

	l.printf("Waiting for Steam to start...\nYou must do this manually.\n")
	log.Info().Msg("waiting for steam")
	if err := l.sleep(ctx); err != nil {
		return fmt.Errorf("failed waiting for steam: %w", err)
	}
	if _, err := l.poll(ctx, 0, l.deps.Probe.PlatformRunning); err != nil {
		return fmt.Errorf("failed waiting for steam: %w", err)
	}
	return nil
}

// stopPriorInstance sends one stop request, then another for every check
// that still finds the renderer running.
func (l *Launcher) stopPriorInstance(ctx context.Context) error {
	if err := l.deps.Platform.Stop(ctx, l.opts.AppID); err != nil {
		return fmt.Errorf("failed to stop running instance: %w", err)
	}

	for attempt := 1; ; attempt++ {
		running, err := l.deps.Probe.RendererRunning(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for running renderer: %w", err)
		}
		if !running {
			return nil
		}

		log.Debug().Int("attempt", attempt).Msg("renderer still running, stopping again")
		if err := l.deps.Platform.Stop(ctx, l.opts.AppID); err != nil {
			return fmt.Errorf("failed to stop running instance: %w", err)
		}
		if err := l.sleep(ctx); err != nil {
			return err
		}
	}
}

func (l *Launcher) launchItem(ctx context.Context, item Item) error {
	l.printf("\n# %s\n", item.Title)
	if l.deps.Presenter != nil {
		if err := l.deps.Presenter.Present(ctx, item.Dir); err != nil {
			log.Warn().Err(err).Str("id", item.ID).Msg("failed to present wallpaper")
		}
	}

	l.setState(StateLaunching)
	if err := l.launch(ctx, item); err != nil {
		return err
	}

	l.setState(StateAwaitingWindow)
	return l.awaitWindow(ctx, item.Title)
}

func (l *Launcher) launch(ctx context.Context, item Item) error {
	args := wallpaper.OpenArgs(item.ProjectFile(), item.Title, l.opts.Width, l.opts.Height)

	direct := l.opts.PathPolicy == PathDirect
	if !direct {
		running, err := l.deps.Probe.RendererRunning(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for running renderer: %w", err)
		}
		direct = running
	}

	logger := log.With().Str("id", item.ID).Str("title", item.Title).Logger()
	if direct {
		logger.Info().Msg("launching wallpaper through compatibility tool")
		if err := l.deps.Runtime.Run(ctx, l.opts.Executable, args...); err != nil {
			return fmt.Errorf("failed to launch wallpaper %s: %w", item.ID, err)
		}
		return nil
	}

	logger.Info().Msg("launching wallpaper through steam")
	if err := l.deps.Platform.Launch(ctx, l.opts.AppID, args...); err != nil {
		return fmt.Errorf("failed to launch wallpaper %s: %w", item.ID, err)
	}
	return nil
}

func (l *Launcher) awaitWindow(ctx context.Context, title string) error {
	exists := func(ctx context.Context) (bool, error) {
		return l.deps.Probe.WindowExists(ctx, title)
	}

	start := l.deps.Clock.Now()
	found, err := l.poll(ctx, l.opts.WindowWait.Timeout, exists)
	if err != nil {
		return fmt.Errorf("failed waiting for window %q: %w", title, err)
	}
	if !found {
		return &WindowTimeoutError{Title: title, Waited: l.deps.Clock.Since(start)}
	}
	log.Debug().Str("title", title).Msg("window appeared")
	return nil
}

func (l *Launcher) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(l.deps.Out, format, a...); err != nil {
		log.Debug().Err(err).Msg("failed to write status")
	}
}
