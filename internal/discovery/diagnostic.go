// SPDX-License-Identifier: MPL-2.0

package discovery

import "fmt"

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a mod that could not be loaded.
	SeverityError Severity = "error"

	// CodeLoadFailed marks an origin whose descriptor or container failed.
	CodeLoadFailed = "mod_load_failed"
	// CodeDuplicateID marks an origin whose mod id was already taken.
	CodeDuplicateID = "mod_duplicate_id"
	// CodeNoDescriptor marks a candidate directory without a descriptor.
	CodeNoDescriptor = "mod_descriptor_missing"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic is a non-fatal discovery problem returned to the caller
	// for rendering.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "mod_load_failed").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the origin associated with this diagnostic.
		Path string
		// Cause is the underlying error (optional).
		Cause error
	}
)

// String renders "<severity>: <path>: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Path, d.Message)
}
