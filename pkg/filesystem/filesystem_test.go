package filesystem_test

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtcontrib/mediastore/pkg/filesystem"
)

func TestAferoFS_ReadDirAndOpen(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, memfs.MkdirAll("/mods/a", 0755))
	require.NoError(t, afero.WriteFile(memfs, "/mods/a/init.lua", []byte("return"), 0644))

	fsys := filesystem.NewAferoFS(memfs)

	entries, err := fsys.ReadDir("/mods")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	f, err := fsys.Open("/mods/a/init.lua")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte("return"), content)
}

func TestAferoFS_ReadFileRejectsDirectory(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, memfs.MkdirAll("/dir", 0755))

	_, err := filesystem.NewAferoFS(memfs).ReadFile("/dir")
	assert.Error(t, err)
}

func TestOS_StatAndReadDir(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()

	info, err := fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
