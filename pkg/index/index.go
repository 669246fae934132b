// Package index reads and writes the binary media manifest.
//
// The format is a 6-byte header followed by the raw content identifiers
// in ascending order, with no count, delimiters or path information:
//
//	offset 0   4 bytes  ASCII magic "MTHS"
//	offset 4   1 byte   format major version (0x00)
//	offset 5   1 byte   format minor version (0x01)
//	offset 6   N * 20 bytes of content identifiers
//
// A reader recovers the entry count as (length - 6) / 20.
package index

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/logging"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// FileName is the conventional manifest name inside an output
// directory.
const FileName = "index.mth"

// Magic identifies a media manifest.
var Magic = []byte("MTHS")

// Format version written by Encode and required by Decode.
const (
	VersionMajor = 0x00
	VersionMinor = 0x01
)

const headerSize = 6

// Encode writes the canonical set's identifiers to w in manifest
// format.
func Encode(w io.Writer, set *types.CanonicalSet) error {
	bw := bufio.NewWriter(w)

	header := append(append([]byte{}, Magic...), VersionMajor, VersionMinor)
	if _, err := bw.Write(header); err != nil {
		return errors.Wrap(err, errors.ErrIndexWrite, "cannot write manifest header")
	}
	for _, a := range set.Assets() {
		if _, err := bw.Write(a.ID[:]); err != nil {
			return errors.Wrapf(err, errors.ErrIndexWrite, "cannot write manifest entry %s", a.ID)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrIndexWrite, "cannot flush manifest")
	}
	return nil
}

// WriteFile encodes the canonical set to the named file, creating or
// truncating it.
func WriteFile(path string, set *types.CanonicalSet) error {
	logger := logging.GetLogger("index")

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIndexWrite, "cannot create manifest %s", path)
	}
	if err := Encode(f, set); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrIndexWrite, "cannot close manifest %s", path)
	}

	logger.Info().Str("path", filepath.Clean(path)).Int("entries", set.Len()).Msg("Manifest written")
	return nil
}

// Decode reads a manifest and returns its content identifiers in file
// order. It validates the magic, the format version and that the
// payload is a whole number of identifiers.
func Decode(r io.Reader) ([]types.ContentID, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexParse, "cannot read manifest")
	}
	if len(raw) < headerSize {
		return nil, errors.Newf(errors.ErrIndexParse, "manifest too short: %d bytes", len(raw))
	}
	if !bytes.Equal(raw[:len(Magic)], Magic) {
		return nil, errors.Newf(errors.ErrIndexParse, "bad manifest magic %q", raw[:len(Magic)])
	}
	if raw[4] != VersionMajor || raw[5] != VersionMinor {
		return nil, errors.Newf(errors.ErrIndexParse, "unsupported manifest version %d.%d", raw[4], raw[5])
	}

	payload := raw[headerSize:]
	if len(payload)%types.ContentIDSize != 0 {
		return nil, errors.Newf(errors.ErrIndexParse,
			"manifest payload of %d bytes is not a whole number of identifiers", len(payload))
	}

	ids := make([]types.ContentID, len(payload)/types.ContentIDSize)
	for i := range ids {
		copy(ids[i][:], payload[i*types.ContentIDSize:])
	}
	return ids, nil
}

// ReadFile decodes the manifest at the named path.
func ReadFile(path string) ([]types.ContentID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexParse, "cannot open manifest %s", path)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}
