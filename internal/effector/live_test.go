package effector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveMkdirpIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c")

	live := NewLive()
	require.NoError(t, live.Mkdirp(context.Background(), target))
	require.NoError(t, live.Mkdirp(context.Background(), target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLiveCreateOrUpdateSymlinkReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	t1 := filepath.Join(dir, "t1")
	t2 := filepath.Join(dir, "t2")
	require.NoError(t, os.WriteFile(t1, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(t2, []byte("b"), 0o644))

	link := filepath.Join(dir, "link")
	live := NewLive()

	require.NoError(t, live.CreateOrUpdateSymlink(context.Background(), link, t1))
	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, t1, got)

	require.NoError(t, live.CreateOrUpdateSymlink(context.Background(), link, t2))
	got, err = os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, t2, got)
}

func TestLiveCopyFileMatchesContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	data := []byte("some file content")
	require.NoError(t, os.WriteFile(src, data, 0o644))

	live := NewLive()
	var lastProgress uint64
	require.NoError(t, live.CopyFile(context.Background(), src, dst, func(n uint64) { lastProgress = n }))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, uint64(len(data)), lastProgress)
}

func TestLiveCopyTreePreservesStructure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "f.txt"), []byte("x"), 0o644))

	live := NewLive()
	require.NoError(t, live.CopyTree(context.Background(), src, dst, nil))

	got, err := os.ReadFile(filepath.Join(dst, "sub", "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}

func TestLiveRemoveFileAndTree(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	tree := filepath.Join(dir, "tree")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tree, "sub"), 0o755))

	live := NewLive()
	require.NoError(t, live.RemoveFile(context.Background(), file))
	require.NoError(t, live.RemoveTree(context.Background(), tree))

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(tree)
	assert.True(t, os.IsNotExist(err))
}
