// Package digest computes content identifiers: the SHA-1 digest of a
// file's exact byte sequence, streamed so large media files are never
// held in memory.
package digest

import (
	"crypto/sha1"
	"io"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// chunkSize is the read size used when streaming file bytes through the
// digest.
const chunkSize = 8 * 1024

// File hashes the file at path on the given filesystem and returns its
// content identifier. The result depends only on the byte sequence,
// never on path, mtime or permissions.
func File(fsys types.FS, path string) (types.ContentID, error) {
	var id types.ContentID

	f, err := fsys.Open(path)
	if err != nil {
		return id, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s for hashing", path)
	}
	defer func() { _ = f.Close() }()

	h := sha1.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return id, errors.Wrapf(err, errors.ErrFileAccess, "read failed while hashing %s", path)
	}

	copy(id[:], h.Sum(nil))
	return id, nil
}

// Bytes returns the content identifier of an in-memory byte sequence.
// Tests use it to compute expected identifiers.
func Bytes(b []byte) types.ContentID {
	return types.ContentID(sha1.Sum(b))
}
