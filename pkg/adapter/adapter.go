// SPDX-License-Identifier: MPL-2.0

package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/invowk/modhost/pkg/origin"
)

type (
	// LanguageAdapter knows how to call into mod code written for one
	// language. Instances are shared by every container that names the same
	// identifier and are owned by the Registry.
	LanguageAdapter interface {
		// ID returns the identifier the adapter was registered under.
		ID() string
	}

	// Factory constructs a new adapter. It takes no arguments.
	Factory func() (LanguageAdapter, error)

	// Invoker is implemented by adapters that can run a mod entrypoint.
	Invoker interface {
		Invoke(ctx context.Context, req InvokeRequest) error
	}

	// InvokeRequest describes a single entrypoint invocation.
	InvokeRequest struct {
		// ModID is the descriptor id of the mod being invoked.
		ModID string
		// Root is the mod's resolved root.
		Root *origin.Root
		// Entrypoint is a path relative to Root.
		Entrypoint string
		// Args are passed to the entrypoint as positional arguments.
		Args   []string
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ExitError reports a non-zero exit status from an entrypoint.
	ExitError struct {
		Code int
	}
)

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("entrypoint exited with status %d", e.Code)
}
