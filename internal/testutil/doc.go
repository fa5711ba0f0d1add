// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that fail the test on error
// instead of returning it: directory and file setup (MustMkdirAll,
// MustWriteFile, MustWriteTree), zip fixtures (MustWriteZip) and resource
// cleanup (MustClose), and config directory isolation (SetConfigHome).
package testutil
