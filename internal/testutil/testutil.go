// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

// ZipEntry describes a single entry written by MustWriteZip.
// Names ending in "/" become directory entries.
type ZipEntry struct {
	Name string
	Body string
	// Method is the zip compression method; zero means zip.Deflate.
	Method uint16
}

// MustMkdirAll creates a directory along with any necessary parents.
func MustMkdirAll(t testing.TB, path string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustWriteFile writes content to path, creating parent directories.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustWriteTree writes every name/content pair of files below dir.
// Names use forward slashes.
func MustWriteTree(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		MustWriteFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
	}
}

// MustClose closes the given io.Closer.
func MustClose(t testing.TB, c io.Closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
}

// MustWriteZip writes a zip archive at path containing entries, in order.
// Entries with Method zstd.ZipMethodWinZip are compressed with zstd.
func MustWriteZip(t testing.TB, path string, entries ...ZipEntry) {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path), 0o755)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create zip %s: %v", path, err)
	}
	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor())

	for _, entry := range entries {
		method := entry.Method
		if method == 0 {
			method = zip.Deflate
		}
		header := &zip.FileHeader{Name: entry.Name, Method: method}
		if entry.Name[len(entry.Name)-1] == '/' {
			header.Method = zip.Store
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", entry.Name, err)
		}
		if _, err := io.WriteString(w, entry.Body); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish zip %s: %v", path, err)
	}
	MustClose(t, f)
}

// Files converts a name/content map into deflated ZipEntry values.
func Files(files map[string]string) []ZipEntry {
	entries := make([]ZipEntry, 0, len(files))
	for name, body := range files {
		entries = append(entries, ZipEntry{Name: name, Body: body})
	}
	return entries
}
