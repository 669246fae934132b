// Package discovery walks mod trees and collects media assets.
//
// A directory containing modpack.txt is a modpack grouping and is
// descended into; a directory containing init.lua is a leaf mod whose
// media subfolders are collected; anything else (VCS metadata and the
// like) is skipped silently.
package discovery

import (
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mtcontrib/mediastore/pkg/digest"
	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/logging"
	"github.com/mtcontrib/mediastore/pkg/types"
	"github.com/mtcontrib/mediastore/pkg/worldmt"
)

const (
	// ModpackMarker marks a directory as a modpack grouping.
	ModpackMarker = "modpack.txt"

	// ModMarker is the entry-point script that marks a leaf mod.
	ModMarker = "init.lua"
)

// MediaDirs are the mod subfolders searched for media, in collection
// order. Only direct file entries are collected; subdirectories of a
// media folder are not descended into.
var MediaDirs = []string{"textures", "models", "sounds"}

// Walker discovers mods under a root and hashes their media files into
// an AssetCollection.
type Walker struct {
	fs      types.FS
	workers int
}

// NewWalker returns a walker reading through fsys. workers bounds the
// number of files hashed concurrently within a mod; zero or negative
// means one per CPU.
func NewWalker(fsys types.FS, workers int) *Walker {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Walker{fs: fsys, workers: workers}
}

// Walk recursively visits mod directories under root and collects media
// assets from every mod that passes the enabled filter. A nil filter
// means unconditional inclusion (the game's own mods cannot be
// disabled). Modpacks are never filtered; only leaf mods are. Traversal
// errors abort the walk; there is no partial-success mode.
func (w *Walker) Walk(root string, enabled *worldmt.EnabledMods, coll *types.AssetCollection) error {
	logger := logging.GetLogger("discovery")
	logger.Debug().Str("root", root).Bool("filtered", enabled != nil).Msg("Walking mod root")

	entries, err := w.fs.ReadDir(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read mod directory %s", root)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		switch {
		case w.exists(filepath.Join(dir, ModpackMarker)):
			if err := w.Walk(dir, enabled, coll); err != nil {
				return err
			}
		case w.exists(filepath.Join(dir, ModMarker)):
			if enabled != nil && !enabled.Contains(entry.Name()) {
				logger.Trace().Str("mod", entry.Name()).Msg("Skipping disabled mod")
				continue
			}
			if err := w.collectMod(dir, coll); err != nil {
				return err
			}
		}
		// Neither marker: probably VCS metadata, skip silently.
	}
	return nil
}

// collectMod hashes every direct file entry of the mod's media
// subfolders into the collection, in subfolder order then enumeration
// order.
func (w *Walker) collectMod(modDir string, coll *types.AssetCollection) error {
	logger := logging.GetLogger("discovery")
	logger.Trace().Str("mod", modDir).Msg("Collecting mod media")

	for _, mediaDir := range MediaDirs {
		dir := filepath.Join(modDir, mediaDir)
		info, err := w.fs.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		entries, err := w.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read media directory %s", dir)
		}

		var paths []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}

		if err := w.hashAll(paths, coll); err != nil {
			return err
		}
	}
	return nil
}

// hashAll hashes the given files with a bounded worker pool and appends
// them to the collection in enumeration order, so discovery sequence
// numbers are independent of hash completion order.
func (w *Walker) hashAll(paths []string, coll *types.AssetCollection) error {
	ids := make([]types.ContentID, len(paths))

	var g errgroup.Group
	g.SetLimit(w.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			id, err := digest.File(w.fs, path)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		coll.Add(path, ids[i])
	}
	return nil
}

// exists reports whether the named path exists on the walker's
// filesystem.
func (w *Walker) exists(path string) bool {
	_, err := w.fs.Stat(path)
	return err == nil
}
