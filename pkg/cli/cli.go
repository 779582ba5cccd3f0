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

// Package cli is the command line front end: flag parsing, config and
// logging setup, and wiring of the launch, stop and tools commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/Kyza/wallpaper-engine-xwayland/pkg/config"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers"
	"github.com/Kyza/wallpaper-engine-xwayland/pkg/helpers/command"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	ErrMissingFlag = errors.New("missing required value")
	ErrMissingTool = errors.New("required program not found")
)

// App holds the process-wide collaborators shared by every command.
type App struct {
	Fs       afero.Fs
	Exec     command.Executor
	Clock    clockwork.Clock
	Out      io.Writer
	Err      io.Writer
	LookPath func(string) (string, error)
	Home     string
	Dirs     helpers.Dirs

	cfg *config.Instance
}

// NewApp returns an App backed by the real OS.
func NewApp() (*App, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &App{
		Fs:       afero.NewOsFs(),
		Exec:     &command.RealExecutor{},
		Clock:    clockwork.NewRealClock(),
		Out:      os.Stdout,
		Err:      os.Stderr,
		LookPath: exec.LookPath,
		Home:     home,
		Dirs:     helpers.DefaultDirs(),
	}, nil
}

type globalFlags struct {
	config string
	debug  bool
}

// Execute runs the command line against a real App.
func Execute(ctx context.Context, args []string) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. The root command launches
// wallpapers.
func NewRootCmd(app *App) *cobra.Command {
	var global globalFlags

	root := newLaunchCmd(app)
	root.Version = config.AppVersion
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := app.Setup(global.config, global.debug)
		if err != nil {
			return err
		}
		app.cfg = cfg
		return nil
	}

	root.PersistentFlags().StringVar(&global.config, "config", "",
		"config file (default is $XDG_CONFIG_HOME/"+config.AppName+"/"+config.CfgFile+")")
	root.PersistentFlags().BoolVarP(&global.debug, "debug", "d", false, "enable debug logging on stderr")

	root.AddCommand(newStopCmd(app), newToolsCmd(app))
	return root
}

// Setup initializes logging and loads the config.
func (a *App) Setup(cfgPath string, debug bool) (*config.Instance, error) {
	var writers []io.Writer
	if debug {
		writers = append(writers, zerolog.ConsoleWriter{Out: a.Err})
	}

	if err := helpers.InitLogging(a.Dirs.LogDir, debug, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}
	log.Logger = log.With().Str("run", uuid.New().String()).Logger()

	cfg, err := config.NewConfig(a.Fs, config.Path(a.Dirs.ConfigDir, cfgPath), config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if debug || cfg.DebugLogging() {
		cfg.SetDebugLogging(true)
	}
	log.Debug().Str("config", cfg.Path()).Str("version", config.AppVersion).Msg("started")

	return cfg, nil
}

// lookPath resolves a required external program.
func (a *App) lookPath(name string) (string, error) {
	path, err := a.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingTool, name, err)
	}
	return path, nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.Out, format, args...)
}
