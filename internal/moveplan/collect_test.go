package moveplan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectSourceFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.mkv")
	require.NoError(t, os.WriteFile(f, []byte("hello"), 0o644))

	files, isFile, err := CollectSource(f)
	require.NoError(t, err)
	assert.True(t, isFile)
	assert.Equal(t, uint64(5), files[f])
}

func TestCollectSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	f1 := filepath.Join(dir, "sub", "a.mkv")
	require.NoError(t, os.WriteFile(f1, []byte("abcd"), 0o644))

	files, isFile, err := CollectSource(dir)
	require.NoError(t, err)
	assert.False(t, isFile)
	assert.Equal(t, uint64(4), files[f1])
}

func TestCollectSourceFailsOnNonFileEntry(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.mkv")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	link := filepath.Join(dir, "link.mkv")
	require.NoError(t, os.Symlink(target, link))

	_, _, err := CollectSource(dir)
	var nonFile *NonFileEntryError
	require.ErrorAs(t, err, &nonFile)
}

func TestCollectSymlinksOnlyKeepsLinksIntoSourceSet(t *testing.T) {
	dir := t.TempDir()
	inside := filepath.Join(dir, "source", "a.mkv")
	outside := filepath.Join(dir, "elsewhere", "b.mkv")
	require.NoError(t, os.MkdirAll(filepath.Dir(inside), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(outside), 0o755))
	require.NoError(t, os.WriteFile(inside, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(outside, []byte("y"), 0o644))

	farm := filepath.Join(dir, "farm")
	require.NoError(t, os.MkdirAll(farm, 0o755))
	linkIn := filepath.Join(farm, "in.mkv")
	linkOut := filepath.Join(farm, "out.mkv")
	require.NoError(t, os.Symlink(inside, linkIn))
	require.NoError(t, os.Symlink(outside, linkOut))

	got, err := CollectSymlinks([]string{farm}, map[string]uint64{inside: 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{linkIn: inside}, got)
}
