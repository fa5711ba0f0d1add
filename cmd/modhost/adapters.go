// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdaptersCommand(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List registered language adapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context(), flags)
			if err != nil {
				return renderError(app.stderr, err, flags.verbose)
			}
			fmt.Fprintln(app.stdout, TitleStyle.Render("Language adapters"))
			for _, id := range s.registry.Identifiers() {
				fmt.Fprintf(app.stdout, "  %s\n", CmdStyle.Render(id))
			}
			return nil
		},
	}
}
