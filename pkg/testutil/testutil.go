// Package testutil scaffolds world, game and mod trees for tests.
//
// Helpers operate on an afero.Fs so the same scaffolding works against
// an in-memory filesystem (discovery and hashing tests) and a real temp
// directory via afero.NewOsFs (placement tests, which need genuine
// link primitives).
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile creates a file with the given content, making parent
// directories as needed.
func WriteFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// MakeMod creates a leaf mod at dir: an init.lua marker plus the given
// media files, keyed by path relative to the mod directory (for example
// "textures/stone.png").
func MakeMod(t *testing.T, fsys afero.Fs, dir string, media map[string]string) {
	t.Helper()
	WriteFile(t, fsys, filepath.Join(dir, "init.lua"), "-- mod entry point\n")
	for rel, content := range media {
		WriteFile(t, fsys, filepath.Join(dir, rel), content)
	}
}

// MakeModpack marks dir as a modpack grouping.
func MakeModpack(t *testing.T, fsys afero.Fs, dir string) {
	t.Helper()
	WriteFile(t, fsys, filepath.Join(dir, "modpack.txt"), "")
}

// WriteWorldMT writes a world.mt enabling or disabling the given mods.
// Disabled mods are written with value "false" so the file shape matches
// what the game itself produces.
func WriteWorldMT(t *testing.T, fsys afero.Fs, worldDir string, mods map[string]bool) {
	t.Helper()

	names := make([]string, 0, len(mods))
	for name := range mods {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("gameid = testgame\n")
	for _, name := range names {
		fmt.Fprintf(&b, "load_mod_%s = %t\n", name, mods[name])
	}
	WriteFile(t, fsys, filepath.Join(worldDir, "world.mt"), b.String())
}
