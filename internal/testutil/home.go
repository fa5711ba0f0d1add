// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetConfigHome points os.UserConfigDir at dir for the rest of the test and
// returns the directory it will report.
//
// Platform handling:
//   - Windows: sets APPDATA
//   - macOS: sets HOME (config lives in ~/Library/Application Support)
//   - Others: sets XDG_CONFIG_HOME
func SetConfigHome(t *testing.T, dir string) string {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
		return dir
	case "darwin":
		t.Setenv("HOME", dir)
		return filepath.Join(dir, "Library", "Application Support")
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
		return dir
	}
}
