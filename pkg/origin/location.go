// SPDX-License-Identifier: MPL-2.0

package origin

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// KindUnknown is returned when the location cannot be stat'ed.
	KindUnknown Kind = iota
	// KindDirectory is a plain directory origin.
	KindDirectory
	// KindArchive is any non-directory origin; it is mounted as a zip archive.
	KindArchive
)

type (
	// Location is the on-disk path a mod was loaded from: a directory or a
	// single archive file. The path is kept exactly as given.
	Location string

	// Kind classifies a Location.
	Kind int
)

// String returns the raw path.
func (l Location) String() string { return string(l) }

// Kind stats the location and reports whether it is a directory or an
// archive candidate. The file extension plays no part.
func (l Location) Kind() (Kind, error) {
	info, err := os.Stat(string(l))
	if err != nil {
		return KindUnknown, &OriginNotFoundError{Path: string(l), Cause: err}
	}
	if info.IsDir() {
		return KindDirectory, nil
	}
	return KindArchive, nil
}

// Base returns the last path element without a trailing separator.
func (l Location) Base() string {
	return filepath.Base(strings.TrimRight(string(l), `/\`))
}

// String returns a human readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindArchive:
		return "archive"
	default:
		return "unknown"
	}
}
