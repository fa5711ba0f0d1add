// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/invowk/modhost/internal/issue"
	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/modmeta"
	"github.com/invowk/modhost/pkg/origin"
)

// describeError attaches remediation hints to a mod loading or invocation
// failure. Errors that are already actionable are returned unchanged.
func describeError(err error, operation, resource string) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return err
	}

	ctx := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		Wrap(err)

	var (
		notFound *origin.OriginNotFoundError
		mount    *origin.ArchiveMountError
		desc     *modmeta.DescriptorError
		inst     *adapter.InstantiationError
	)
	switch {
	case errors.As(err, &notFound):
		ctx.WithSuggestion("Verify the mod path is correct")
	case errors.As(err, &mount):
		ctx.WithSuggestions(
			"Check that the file is a valid zip archive",
			"Mods can also be plain directories",
		)
	case errors.Is(err, modmeta.ErrDescriptorNotFound):
		ctx.WithSuggestion(fmt.Sprintf("Add a %s or %s at the top of the mod", modmeta.CUEFileName, modmeta.TOMLFileName))
	case errors.As(err, &desc):
		ctx.WithSuggestion("Fix the descriptor fields reported above")
	case errors.As(err, &inst) && errors.Is(err, adapter.ErrUnknownAdapter):
		ctx.WithSuggestion("Run 'modhost adapters' to see the available adapter identifiers")
	case errors.As(err, &inst):
		ctx.WithSuggestion("The adapter factory failed; rerun with --verbose for details")
	}
	return ctx.BuildError()
}

// renderError writes the styled error and returns it wrapped in the exit
// signal for RunE, so callers can still inspect the cause.
func renderError(w io.Writer, err error, verbose bool) error {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
	return &ExitError{Code: 1, Err: err}
}
