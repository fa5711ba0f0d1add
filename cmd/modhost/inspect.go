// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/invowk/modhost/pkg/mod"
	"github.com/invowk/modhost/pkg/origin"
)

// readmeFile is rendered by "inspect --readme".
const readmeFile = "README.md"

func newInspectCommand(app *App, flags *rootFlags) *cobra.Command {
	var readme bool

	inspectCmd := &cobra.Command{
		Use:   "inspect <origin>",
		Short: "Show a mod's metadata and root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context(), flags)
			if err != nil {
				return renderError(app.stderr, err, flags.verbose)
			}

			loc := origin.Location(args[0])
			c, err := s.loader.Load(loc, s.cfg.InstantiateAdapters)
			if err != nil {
				return renderError(app.stderr, describeError(err, "load mod", args[0]), s.verbose)
			}
			return inspectMod(app, s, c, readme)
		},
	}

	inspectCmd.Flags().BoolVar(&readme, "readme", false, "render the mod's README.md")
	return inspectCmd
}

func inspectMod(app *App, s *session, c *mod.Container, readme bool) error {
	meta := c.Metadata()
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render(meta.DisplayName()))
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(out, "  %s %s\n", labelStyle.Render(label), value)
		}
	}
	field("id", meta.ID)
	field("version", meta.Version)
	field("description", meta.Description)
	field("authors", strings.Join(meta.Authors, ", "))
	field("descriptor", meta.FilePath)

	adapterState := "not instantiated"
	if c.Adapter() != nil {
		adapterState = "instantiated"
	}
	field("adapter", CmdStyle.Render(meta.Adapter)+" "+SubtitleStyle.Render("("+adapterState+")"))

	root, err := c.Root()
	if err != nil {
		return renderError(app.stderr, describeError(err, "open mod root", string(c.OriginFile())), s.verbose)
	}
	kind := "directory"
	if root.IsArchive() {
		kind = "archive"
	}
	field("origin", string(c.OriginFile())+" "+SubtitleStyle.Render("("+kind+")"))
	field("root", root.Path())

	if names := meta.EntrypointNames(); len(names) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Entrypoints:"))
		for _, name := range names {
			p, _ := meta.Entrypoint(name)
			fmt.Fprintf(out, "  %s %s\n", labelStyle.Render(name), CmdStyle.Render(p))
		}
	}

	fmt.Fprintln(out, SubtitleStyle.Render("Files:"))
	entries, err := afero.ReadDir(root.FS(), origin.ArchiveRootPath)
	if err != nil {
		fmt.Fprintf(out, "  %s\n", WarningStyle.Render("unable to list root: "+err.Error()))
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		fmt.Fprintf(out, "  %s\n", name)
	}

	if readme {
		return renderReadme(app, s, root)
	}
	return nil
}

func renderReadme(app *App, s *session, root *origin.Root) error {
	data, err := afero.ReadFile(root.FS(), readmeFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("No "+readmeFile+" in this mod"))
		return nil
	}
	if err != nil {
		return renderError(app.stderr, fmt.Errorf("read %s: %w", readmeFile, err), s.verbose)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return renderError(app.stderr, fmt.Errorf("create markdown renderer: %w", err), s.verbose)
	}
	rendered, err := r.Render(string(data))
	if err != nil {
		return renderError(app.stderr, fmt.Errorf("render %s: %w", readmeFile, err), s.verbose)
	}
	fmt.Fprint(app.stdout, rendered)
	return nil
}
