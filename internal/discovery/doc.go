// SPDX-License-Identifier: MPL-2.0

// Package discovery finds mod origins in a directory and loads them into
// containers in parallel, collecting per-origin problems as diagnostics.
package discovery
