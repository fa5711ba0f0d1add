// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/modhost/internal/config"
	"github.com/invowk/modhost/internal/lang"
	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/mod"
	"github.com/invowk/modhost/pkg/origin"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and builds a session from it.
	App struct {
		Config           config.Provider
		RegisterAdapters func(*adapter.Registry) error
		stdin            io.Reader
		stdout           io.Writer
		stderr           io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		// RegisterAdapters fills each session's registry; defaults to the
		// built-in adapters.
		RegisterAdapters func(*adapter.Registry) error
		Stdin            io.Reader
		Stdout           io.Writer
		Stderr           io.Writer
	}

	// session holds the per-invocation services: effective config, logger,
	// and a loader sharing one registry and one resolver.
	session struct {
		cfg      *config.Config
		logger   *log.Logger
		registry *adapter.Registry
		resolver *origin.Resolver
		loader   *mod.Loader
		verbose  bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.RegisterAdapters == nil {
		deps.RegisterAdapters = lang.RegisterBuiltins
	}

	return &App{
		Config:           deps.Config,
		RegisterAdapters: deps.RegisterAdapters,
		stdin:            deps.Stdin,
		stdout:           deps.Stdout,
		stderr:           deps.Stderr,
	}, nil
}

// newSession loads configuration and builds the loader for one command run.
func (a *App) newSession(ctx context.Context, flags *rootFlags) (*session, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.cfgFile})
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(a.stderr, cfg.LogLevel, flags.verbose)
	if err != nil {
		return nil, err
	}

	registry := adapter.NewRegistry(adapter.WithLogger(logger))
	if err := a.RegisterAdapters(registry); err != nil {
		return nil, fmt.Errorf("register adapters: %w", err)
	}
	resolver := origin.NewResolver(origin.WithLogger(logger))

	return &session{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		resolver: resolver,
		loader:   mod.NewLoader(registry, resolver, mod.WithLogger(logger)),
		verbose:  flags.verbose,
	}, nil
}

// newLogger builds the stderr logger. --verbose forces debug level.
func newLogger(w io.Writer, level string, verbose bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "modhost",
	}), nil
}
