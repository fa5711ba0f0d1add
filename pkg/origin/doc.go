// SPDX-License-Identifier: MPL-2.0

// Package origin turns the on-disk location a mod was loaded from into a
// uniform, read-only filesystem root.
//
// A Location is either a directory or a single archive file. Directory
// origins are exposed as a read-only view rooted at the directory itself;
// archive origins are mounted as a read-only zip view whose root is "/". Callers read resources through Root.FS() without caring
// which kind of origin backs it.
//
// The Resolver keeps no mount table: every ResolveRoot call on an archive
// opens a fresh mount. Memoization belongs to the caller (see pkg/mod).
package origin
