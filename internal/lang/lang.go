// SPDX-License-Identifier: MPL-2.0

// Package lang wires the built-in language adapters into an adapter registry.
package lang

import (
	"errors"

	"github.com/invowk/modhost/internal/lang/cuelang"
	"github.com/invowk/modhost/internal/lang/shell"
	"github.com/invowk/modhost/pkg/adapter"
)

// RegisterBuiltins registers every built-in adapter factory with r.
func RegisterBuiltins(r *adapter.Registry) error {
	return errors.Join(
		r.Register(shell.ID, shell.New),
		r.Register(cuelang.ID, cuelang.New),
	)
}
