package types

import (
	"io"
	"io/fs"
)

// FS is the read-side filesystem interface used by discovery and
// hashing. Placement primitives (copy, hardlink, symlink) are not part
// of it; they live behind the store's placement strategies, which only
// the OS provides.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens a file for streamed reading.
	Open(name string) (io.ReadCloser, error)

	// ReadFile reads a whole file. Used for small files only
	// (configuration); media bytes are always streamed via Open.
	ReadFile(name string) ([]byte, error)
}
