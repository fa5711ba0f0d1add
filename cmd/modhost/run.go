// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/origin"
)

func newRunCommand(app *App, flags *rootFlags) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <origin> <entrypoint> [args...]",
		Short: "Run a mod entrypoint through its language adapter",
		Long: `Run a mod entrypoint through its language adapter.

The adapter is always instantiated, regardless of instantiate_adapters.
Arguments after the entrypoint name are passed to it unchanged.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context(), flags)
			if err != nil {
				return renderError(app.stderr, err, flags.verbose)
			}
			return runEntrypoint(cmd, app, s, args[0], args[1], args[2:])
		},
	}
	// Everything after the entrypoint belongs to the mod.
	runCmd.Flags().SetInterspersed(false)
	return runCmd
}

func runEntrypoint(cmd *cobra.Command, app *App, s *session, loc, name string, args []string) error {
	c, err := s.loader.Load(origin.Location(loc), true)
	if err != nil {
		return renderError(app.stderr, describeError(err, "load mod", loc), s.verbose)
	}

	meta := c.Metadata()
	entrypoint, ok := meta.Entrypoint(name)
	if !ok {
		err := fmt.Errorf("mod %q has no entrypoint %q (available: %s)", meta.ID, name, strings.Join(meta.EntrypointNames(), ", "))
		return renderError(app.stderr, err, s.verbose)
	}

	invoker, ok := c.Adapter().(adapter.Invoker)
	if !ok {
		err := fmt.Errorf("adapter %q cannot run entrypoints", meta.Adapter)
		return renderError(app.stderr, err, s.verbose)
	}

	root, err := c.Root()
	if err != nil {
		return renderError(app.stderr, describeError(err, "open mod root", loc), s.verbose)
	}

	s.logger.Debug("running entrypoint", "mod", meta.ID, "entrypoint", name, "path", entrypoint)
	err = invoker.Invoke(cmd.Context(), adapter.InvokeRequest{
		ModID:      meta.ID,
		Root:       root,
		Entrypoint: entrypoint,
		Args:       args,
		Stdin:      app.stdin,
		Stdout:     app.stdout,
		Stderr:     app.stderr,
	})

	var exitErr *adapter.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.Code, Err: exitErr}
	}
	if err != nil {
		return renderError(app.stderr, describeError(err, "run entrypoint", meta.ID+":"+name), s.verbose)
	}
	return nil
}
