// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/modhost/internal/discovery"
	"github.com/invowk/modhost/pkg/origin"
)

func newListCommand(app *App, flags *rootFlags) *cobra.Command {
	var strict bool

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List the mods found in a directory",
		Long: `List the mods found in a directory.

Every sub-directory and every .zip or .jar file is treated as a mod origin.
The directory defaults to mods_dir from the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context(), flags)
			if err != nil {
				return renderError(app.stderr, err, flags.verbose)
			}

			dir := s.cfg.ModsDir
			if len(args) == 1 {
				dir = args[0]
			}
			return listMods(cmd, app, s, dir, strict)
		},
	}

	listCmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when any mod fails to load")
	return listCmd
}

func listMods(cmd *cobra.Command, app *App, s *session, dir string, strict bool) error {
	candidates, err := discovery.Scan(dir)
	if err != nil {
		return renderError(app.stderr, describeError(err, "scan mods directory", dir), s.verbose)
	}

	res, err := discovery.Load(cmd.Context(), s.loader, candidates, discovery.Options{
		Instantiate: s.cfg.InstantiateAdapters,
		Parallelism: s.cfg.MaxParallelLoads,
		Logger:      s.logger,
	})
	if err != nil {
		return renderError(app.stderr, err, s.verbose)
	}

	if len(res.Containers) == 0 {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("No mods found in "+dir))
	} else {
		fmt.Fprintln(app.stdout, TitleStyle.Render(fmt.Sprintf("Mods in %s", dir)))
		for _, c := range res.Containers {
			meta := c.Metadata()
			version := meta.Version
			if version == "" {
				version = "-"
			}
			kind, _ := c.OriginFile().Kind()
			fmt.Fprintf(app.stdout, "  %s %-10s %s %s\n",
				TitleStyle.Render(fmt.Sprintf("%-24s", meta.ID)), version,
				CmdStyle.Render(fmt.Sprintf("%-16s", meta.Adapter)), kindLabel(kind))
		}
	}

	for _, d := range res.Diagnostics {
		style := WarningStyle
		if d.Severity == discovery.SeverityError {
			style = ErrorStyle
		}
		fmt.Fprintln(app.stderr, style.Render(d.String()))
	}

	if strict && len(res.Diagnostics) > 0 {
		err := fmt.Errorf("%d mod(s) could not be loaded", len(res.Diagnostics))
		fmt.Fprintln(app.stderr, ErrorStyle.Render(err.Error()))
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

func kindLabel(k origin.Kind) string {
	if k == origin.KindDirectory {
		return "dir"
	}
	return k.String()
}
