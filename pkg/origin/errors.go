// SPDX-License-Identifier: MPL-2.0

package origin

import "fmt"

type (
	// OriginNotFoundError is returned when an origin does not exist or
	// cannot be accessed.
	OriginNotFoundError struct {
		Path  string
		Cause error
	}

	// ArchiveMountError is returned when a non-directory origin cannot be
	// opened as an archive (corrupt, unreadable or not a zip file).
	ArchiveMountError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface.
func (e *OriginNotFoundError) Error() string {
	return fmt.Sprintf("mod origin %q not found or not accessible: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying stat error, so errors.Is(err, fs.ErrNotExist) works.
func (e *OriginNotFoundError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *ArchiveMountError) Error() string {
	return fmt.Sprintf("cannot mount archive %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O or format error.
func (e *ArchiveMountError) Unwrap() error { return e.Cause }
