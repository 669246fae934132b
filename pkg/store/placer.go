// Package store materializes canonical assets into the content-addressed
// output directory, naming each entry by the lowercase hex of its
// content identifier.
package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// Placer is a placement strategy: it puts the bytes of src at dst.
// Implementations exist for copy, hardlink, symlink and no-op; platform
// capability checks happen in NewPlacer, not at call sites.
type Placer interface {
	Place(src, dst string) error
	Mode() types.PlaceMode
}

// NewPlacer returns the strategy for the given mode. Requesting symlink
// placement on a platform without a working symlink primitive fails
// here with PLACE_UNSUPPORTED rather than falling back silently.
func NewPlacer(mode types.PlaceMode) (Placer, error) {
	switch mode {
	case types.PlaceNone:
		return noopPlacer{}, nil
	case types.PlaceCopy:
		return copyPlacer{}, nil
	case types.PlaceHardlink:
		return hardlinkPlacer{}, nil
	case types.PlaceSymlink:
		if err := probeSymlink(); err != nil {
			return nil, err
		}
		return symlinkPlacer{}, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown placement mode %v", mode)
}

// probeSymlink verifies the symlink primitive actually works by
// creating and removing one in a scratch directory. Some platforms
// compile the call but reject it at runtime (unprivileged Windows,
// plan9), so a static build check is not enough.
func probeSymlink() error {
	dir, err := os.MkdirTemp("", "mediastore-symlink-probe-")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot create symlink probe directory")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	if err := os.Symlink(filepath.Join(dir, "target"), filepath.Join(dir, "link")); err != nil {
		return errors.Wrap(err, errors.ErrPlaceUnsupported, "symlink placement is not supported on this platform")
	}
	return nil
}

type noopPlacer struct{}

func (noopPlacer) Place(src, dst string) error { return nil }
func (noopPlacer) Mode() types.PlaceMode       { return types.PlaceNone }

type copyPlacer struct{}

func (copyPlacer) Place(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (copyPlacer) Mode() types.PlaceMode { return types.PlaceCopy }

type hardlinkPlacer struct{}

func (hardlinkPlacer) Place(src, dst string) error {
	return os.Link(src, dst)
}

func (hardlinkPlacer) Mode() types.PlaceMode { return types.PlaceHardlink }

type symlinkPlacer struct{}

func (symlinkPlacer) Place(src, dst string) error {
	return os.Symlink(src, dst)
}

func (symlinkPlacer) Mode() types.PlaceMode { return types.PlaceSymlink }
