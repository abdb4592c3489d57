package clientadapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avast/retry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClientScript writes an executable shell script that branches on argv
// to emulate the external client binary's wire contract (spec §6).
func fakeClientScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-client")
	script := "#!/bin/sh\n" + body
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestExecClientListTorrentsJoinsAndValidates(t *testing.T) {
	script := fakeClientScript(t, `
case "$3" in
  torrent)
    echo '[{"id":"t1","name":"show","path":"/data/show","progress":1,"tracker_urls":["http://tracker"],"size":4,"files":1}]'
    ;;
  file)
    echo '[{"id":"f1","torrent_id":"t1","path":"a/1.mkv","size":4}]'
    ;;
esac
exit 0
`)

	c := NewExecClient(script)
	got, err := c.ListTorrents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, uint64(4), got[0].Files["a/1.mkv"])
}

func TestExecClientSurfacesNonZeroExit(t *testing.T) {
	script := fakeClientScript(t, `
echo "boom" 1>&2
exit 1
`)

	c := NewExecClient(script)
	c.retryOpts = []retry.Option{retry.Attempts(1)}
	_, err := c.ListTorrents(context.Background())
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Stderr, "boom")
}

func TestExecClientDryRunSkipsMutatingCalls(t *testing.T) {
	script := fakeClientScript(t, `
echo "should not run" 1>&2
exit 1
`)

	c := NewExecClient(script)
	c.DryRun = true

	assert.NoError(t, c.PauseTorrent(context.Background(), "t1"))
	assert.NoError(t, c.ResumeTorrent(context.Background(), "t1"))
	assert.NoError(t, c.MoveTorrent(context.Background(), "t1", "/new/base"))
}

func TestExecClientMoveTorrentRejectsNonUTF8Path(t *testing.T) {
	script := fakeClientScript(t, "exit 0\n")
	c := NewExecClient(script)

	err := c.MoveTorrent(context.Background(), "t1", string([]byte{0xff, 0xfe}))
	var nonUTF8 *NonUTF8PathError
	require.ErrorAs(t, err, &nonUTF8)
}
