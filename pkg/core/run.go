// Package core orchestrates a full store build: resolve enabled mods,
// walk the mod roots, canonicalize the collected assets, write the
// manifest and materialize the store.
package core

import (
	"os"
	"path/filepath"

	"github.com/mtcontrib/mediastore/pkg/discovery"
	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/filesystem"
	"github.com/mtcontrib/mediastore/pkg/index"
	"github.com/mtcontrib/mediastore/pkg/logging"
	"github.com/mtcontrib/mediastore/pkg/store"
	"github.com/mtcontrib/mediastore/pkg/types"
	"github.com/mtcontrib/mediastore/pkg/worldmt"
)

// WorldModsDir is the subdirectory of a world that holds its own mods.
const WorldModsDir = "worldmods"

// GameModsDir is the subdirectory of a game that holds its bundled
// mods.
const GameModsDir = "mods"

// BuildOptions carries the resolved inputs of a store build. The CLI
// layer validates paths and flag combinations before constructing one.
type BuildOptions struct {
	// WorldPath is the world directory (contains world.mt and
	// optionally worldmods/).
	WorldPath string

	// GamePath is the game directory (contains mods/). Game mods
	// cannot be disabled, so no enablement filter applies to them.
	GamePath string

	// ExtraPaths are additional mod roots searched with the world's
	// enablement filter, in the order given.
	ExtraPaths []string

	// MediaDir is the output store directory.
	MediaDir string

	// IndexPath is the manifest location. Empty means
	// <MediaDir>/index.mth.
	IndexPath string

	// Mode selects the placement strategy.
	Mode types.PlaceMode

	// HashWorkers bounds concurrent hashing; zero means one per CPU.
	HashWorkers int

	// FS overrides the filesystem used for discovery and hashing.
	// Nil means the OS filesystem.
	FS types.FS
}

// Result reports what a build did. When placement failures occurred the
// Result is returned alongside the error so callers can still report
// the partial work.
type Result struct {
	EnabledMods int
	FilesFound  int
	Unique      int
	Duplicates  int
	Placed      int
	Skipped     int
	Failures    []store.Failure
	IndexPath   string
}

// Run executes a full build. Discovery, configuration and manifest
// errors are fatal and all-or-nothing: no output of an aborted run
// should be trusted. Placement failures are isolated per asset; every
// asset is attempted and the run then fails with a summary error.
func Run(opts BuildOptions) (*Result, error) {
	logger := logging.GetLogger("core")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// Construct the placer first so an unsupported placement mode
	// fails before any work is done.
	placer, err := store.NewPlacer(opts.Mode)
	if err != nil {
		return nil, err
	}

	enabled, err := worldmt.Load(fsys, opts.WorldPath)
	if err != nil {
		return nil, err
	}

	walker := discovery.NewWalker(fsys, opts.HashWorkers)
	coll := types.NewAssetCollection()

	// World mods first: their paths win ties during deduplication.
	worldMods := filepath.Join(opts.WorldPath, WorldModsDir)
	if _, statErr := fsys.Stat(worldMods); statErr == nil {
		if err := walker.Walk(worldMods, enabled, coll); err != nil {
			return nil, err
		}
	}

	if err := walker.Walk(filepath.Join(opts.GamePath, GameModsDir), nil, coll); err != nil {
		return nil, err
	}

	for _, extra := range opts.ExtraPaths {
		if err := walker.Walk(extra, enabled, coll); err != nil {
			return nil, err
		}
	}

	canonical := coll.Canonicalize()
	logger.Info().
		Int("found", coll.Len()).
		Int("unique", canonical.Len()).
		Msg("Media collection complete")

	if err := os.MkdirAll(opts.MediaDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot create output directory %s", opts.MediaDir)
	}

	indexPath := opts.IndexPath
	if indexPath == "" {
		indexPath = filepath.Join(opts.MediaDir, index.FileName)
	}
	if err := index.WriteFile(indexPath, canonical); err != nil {
		return nil, err
	}

	result := &Result{
		EnabledMods: enabled.Len(),
		FilesFound:  coll.Len(),
		Unique:      canonical.Len(),
		Duplicates:  coll.Len() - canonical.Len(),
		IndexPath:   indexPath,
	}

	report, err := store.NewMaterializer(placer, opts.MediaDir).Materialize(canonical)
	result.Placed = report.Placed
	result.Skipped = report.Skipped
	result.Failures = report.Failures
	if err != nil {
		return result, err
	}
	return result, nil
}
