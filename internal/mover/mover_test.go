package mover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/effector"
	"github.com/torrentreconcile/xseed/internal/moveplan"
)

type fakeClient struct {
	torrents []clientadapter.ClientTorrent
	paused   []string
	resumed  []string
	moved    map[string]string
}

func (f *fakeClient) ListTorrents(context.Context) ([]clientadapter.ClientTorrent, error) {
	return f.torrents, nil
}
func (f *fakeClient) PauseTorrent(_ context.Context, id string) error {
	f.paused = append(f.paused, id)
	return nil
}
func (f *fakeClient) ResumeTorrent(_ context.Context, id string) error {
	f.resumed = append(f.resumed, id)
	return nil
}
func (f *fakeClient) MoveTorrent(_ context.Context, id, newBasePath string) error {
	if f.moved == nil {
		f.moved = make(map[string]string)
	}
	f.moved[id] = newBasePath
	return nil
}
func (f *fakeClient) AddTorrent(context.Context, string, string) error { return nil }

var _ clientadapter.Client = (*fakeClient)(nil)

func TestMoveRenamesDirectoryAndUpdatesTorrent(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "x")
	target := filepath.Join(root, "tgt")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "file.bin"), []byte("hi"), 0o644))

	client := &fakeClient{
		torrents: []clientadapter.ClientTorrent{
			{ID: "t1", Name: "x", BasePath: source, Progress: 1.0, Files: map[string]uint64{"file.bin": 2}},
		},
	}

	svc := New(client, effector.NewLive())
	res, err := svc.Move(context.Background(), source, target, Options{})
	require.NoError(t, err)
	assert.False(t, res.UsedCopyFallback)

	assert.NoDirExists(t, source)
	assert.FileExists(t, filepath.Join(target, "x", "file.bin"))
	assert.Equal(t, filepath.Join(target, "x"), client.moved["t1"])
	assert.Equal(t, []string{"t1"}, client.paused)
	assert.Equal(t, []string{"t1"}, client.resumed)
}

func TestMoveFailsWhenTorrentIncomplete(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "x")
	target := filepath.Join(root, "tgt")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "file.bin"), []byte("hi"), 0o644))

	client := &fakeClient{
		torrents: []clientadapter.ClientTorrent{
			{ID: "t1", Name: "x", BasePath: source, Progress: 0.5, Files: map[string]uint64{"file.bin": 2}},
		},
	}

	svc := New(client, effector.NewLive())
	_, err := svc.Move(context.Background(), source, target, Options{})
	require.Error(t, err)
	var incomplete *moveplan.IncompleteError
	assert.ErrorAs(t, err, &incomplete)
}

func TestMoveFailsWhenTargetMissing(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "x")
	require.NoError(t, os.MkdirAll(source, 0o755))

	svc := New(&fakeClient{}, effector.NewLive())
	_, err := svc.Move(context.Background(), source, filepath.Join(root, "does-not-exist"), Options{})
	require.Error(t, err)
}

func TestMoveCopyAndUnlinkRemovesSource(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "x")
	target := filepath.Join(root, "tgt")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "file.bin"), []byte("hi"), 0o644))

	client := &fakeClient{
		torrents: []clientadapter.ClientTorrent{
			{ID: "t1", Name: "x", BasePath: source, Progress: 1.0, Files: map[string]uint64{"file.bin": 2}},
		},
	}

	svc := New(client, effector.NewLive())
	res, err := svc.Move(context.Background(), source, target, Options{Strategy: moveplan.CopyAndUnlink})
	require.NoError(t, err)
	assert.False(t, res.UsedCopyFallback)

	assert.NoDirExists(t, source)
	assert.FileExists(t, filepath.Join(target, "x", "file.bin"))
}
