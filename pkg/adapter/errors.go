// SPDX-License-Identifier: MPL-2.0

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAdapter is the cause of an InstantiationError when no factory
	// is registered for the identifier.
	ErrUnknownAdapter = errors.New("no adapter factory registered")
	// ErrNilAdapter is the cause when a factory returns a nil adapter without an error.
	ErrNilAdapter = errors.New("adapter factory returned nil")
	// ErrFactoryPanic is the cause when a factory panics.
	ErrFactoryPanic = errors.New("adapter factory panicked")

	// ErrEmptyIdentifier is returned by Register for an empty identifier.
	ErrEmptyIdentifier = errors.New("adapter identifier must not be empty")
	// ErrNilFactory is returned by Register for a nil factory.
	ErrNilFactory = errors.New("adapter factory must not be nil")
	// ErrDuplicateFactory is returned by Register when the identifier is taken.
	ErrDuplicateFactory = errors.New("adapter factory already registered")
)

// InstantiationError is returned when an adapter cannot be created for a mod.
type InstantiationError struct {
	// AdapterID is the identifier the mod asked for.
	AdapterID string
	// ModID is the descriptor id of the mod that asked for it.
	ModID string
	Cause error
}

// Error implements the error interface.
func (e *InstantiationError) Error() string {
	return fmt.Sprintf("unable to create language adapter %q for mod %q: %v", e.AdapterID, e.ModID, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InstantiationError) Unwrap() error { return e.Cause }
