// SPDX-License-Identifier: MPL-2.0

package origin

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

// ArchiveRootPath is the path of the top-level entry of a mounted archive.
const ArchiveRootPath = "/"

// Root is a browsable, read-only view over a mod origin.
//
// For archive origins the Root owns the open archive handle until Close is
// called. A Root held by a mod container is never closed by the container;
// it lives until process teardown.
type Root struct {
	origin Location
	path   string
	fs     afero.Fs
	closer io.Closer

	closeOnce sync.Once
	closeErr  error
}

// Open resolves loc into a Root without any bookkeeping. It is meant for
// scoped acquisition (open, read, Close); long-lived roots should come from
// a Resolver so that mounts are observable.
func Open(loc Location) (*Root, error) {
	info, err := os.Stat(string(loc))
	if err != nil {
		return nil, &OriginNotFoundError{Path: string(loc), Cause: err}
	}
	if info.IsDir() {
		return openDirectory(loc), nil
	}
	return mountArchive(loc)
}

func openDirectory(loc Location) *Root {
	return &Root{
		origin: loc,
		path:   string(loc),
		fs:     afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), string(loc))),
	}
}

func mountArchive(loc Location) (*Root, error) {
	rc, err := zip.OpenReader(string(loc))
	if err != nil {
		return nil, &ArchiveMountError{Path: string(loc), Cause: err}
	}
	// Method 93 (zstd) is not understood by archive/zip on its own.
	rc.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())

	return &Root{
		origin: loc,
		path:   ArchiveRootPath,
		fs:     afero.NewReadOnlyFs(afero.FromIOFS{FS: archiveFS{rc}}),
		closer: rc,
	}, nil
}

// archiveFS maps afero-style names ("/assets/a.txt", "/") onto the unrooted
// names io/fs expects. zip.Reader synthesizes directories that have no entry
// of their own, so file-only archives still browse like a directory.
type archiveFS struct {
	fsys fs.FS
}

func (a archiveFS) Open(name string) (fs.File, error) {
	return a.fsys.Open(ioFSName(name))
}

func ioFSName(name string) string {
	cleaned := path.Clean("/" + filepath.ToSlash(name))
	if cleaned == "/" {
		return "."
	}
	return cleaned[1:]
}

// Path is the origin directory for directory roots and ArchiveRootPath for
// archive roots.
func (r *Root) Path() string { return r.path }

// FS returns the read-only filesystem rooted at Path. Names are resolved
// relative to the root, so "mod.cue" and "/mod.cue" are the same file.
func (r *Root) FS() afero.Fs { return r.fs }

// Origin returns the location this root was resolved from.
func (r *Root) Origin() Location { return r.origin }

// IsArchive reports whether the root is a mounted archive.
func (r *Root) IsArchive() bool { return r.closer != nil }

// Close releases the archive handle. It is a no-op for directory roots and
// safe to call more than once.
func (r *Root) Close() error {
	if r.closer == nil {
		return nil
	}
	r.closeOnce.Do(func() {
		r.closeErr = r.closer.Close()
	})
	return r.closeErr
}
