package store_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtcontrib/mediastore/pkg/digest"
	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/store"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// writeSources creates one source file per content string and returns
// the canonical set over them.
func writeSources(t *testing.T, dir string, contents ...string) *types.CanonicalSet {
	t.Helper()
	coll := types.NewAssetCollection()
	for i, content := range contents {
		path := filepath.Join(dir, "src-"+string(rune('a'+i)))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		coll.Add(path, digest.Bytes([]byte(content)))
	}
	return coll.Canonicalize()
}

func newMaterializer(t *testing.T, mode types.PlaceMode, outDir string) *store.Materializer {
	t.Helper()
	placer, err := store.NewPlacer(mode)
	require.NoError(t, err)
	return store.NewMaterializer(placer, outDir)
}

func TestMaterialize_Copy(t *testing.T) {
	srcDir, outDir := t.TempDir(), t.TempDir()
	set := writeSources(t, srcDir, "abc", "xyz")

	report, err := newMaterializer(t, types.PlaceCopy, outDir).Materialize(set)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Placed)
	assert.Zero(t, report.Skipped)

	for _, a := range set.Assets() {
		got, err := os.ReadFile(filepath.Join(outDir, a.ID.Hex()))
		require.NoError(t, err)
		want, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMaterialize_Hardlink(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(srcDir, "out") // same volume as the sources
	require.NoError(t, os.Mkdir(outDir, 0755))
	set := writeSources(t, srcDir, "abc")

	report, err := newMaterializer(t, types.PlaceHardlink, outDir).Materialize(set)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Placed)

	got, err := os.ReadFile(filepath.Join(outDir, set.Assets()[0].ID.Hex()))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestMaterialize_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}
	srcDir, outDir := t.TempDir(), t.TempDir()
	set := writeSources(t, srcDir, "abc")

	report, err := newMaterializer(t, types.PlaceSymlink, outDir).Materialize(set)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Placed)

	dst := filepath.Join(outDir, set.Assets()[0].ID.Hex())
	target, err := os.Readlink(dst)
	require.NoError(t, err)
	assert.Equal(t, set.Assets()[0].Path, target)
}

func TestMaterialize_NoneDoesNothing(t *testing.T) {
	srcDir, outDir := t.TempDir(), t.TempDir()
	set := writeSources(t, srcDir, "abc")

	report, err := newMaterializer(t, types.PlaceNone, outDir).Materialize(set)
	require.NoError(t, err)
	assert.Zero(t, report.Placed)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterialize_SkipsExistingEntries(t *testing.T) {
	srcDir, outDir := t.TempDir(), t.TempDir()
	set := writeSources(t, srcDir, "abc", "xyz")

	// Pre-place one entry with sentinel content; a re-run must leave
	// it untouched and only write the missing one.
	existing := filepath.Join(outDir, set.Assets()[0].ID.Hex())
	require.NoError(t, os.WriteFile(existing, []byte("already here"), 0644))

	report, err := newMaterializer(t, types.PlaceCopy, outDir).Materialize(set)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Placed)
	assert.Equal(t, 1, report.Skipped)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, []byte("already here"), got)
}

func TestMaterialize_RerunIsIdempotent(t *testing.T) {
	srcDir, outDir := t.TempDir(), t.TempDir()
	set := writeSources(t, srcDir, "abc", "xyz")
	m := newMaterializer(t, types.PlaceCopy, outDir)

	report, err := m.Materialize(set)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Placed)

	report, err = m.Materialize(set)
	require.NoError(t, err)
	assert.Zero(t, report.Placed)
	assert.Equal(t, 2, report.Skipped)
}

func TestMaterialize_IsolatesPerAssetFailures(t *testing.T) {
	srcDir, outDir := t.TempDir(), t.TempDir()
	set := writeSources(t, srcDir, "abc", "xyz")

	// Break one source after hashing: its placement fails, the other
	// must still be attempted and succeed.
	require.NoError(t, os.Remove(set.Assets()[0].Path))

	report, err := newMaterializer(t, types.PlaceCopy, outDir).Materialize(set)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceFailed))
	assert.Equal(t, 1, report.Placed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, set.Assets()[0].Path, report.Failures[0].Asset.Path)
}

func TestNewPlacer_UnknownMode(t *testing.T) {
	_, err := store.NewPlacer(types.PlaceMode(42))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
