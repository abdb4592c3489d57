package clientadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinTorrentsSucceedsOnConsistentSet(t *testing.T) {
	torrents := []wireTorrent{
		{ID: "t1", Name: "show", Path: "/data/show", Size: 10, Files: 2},
	}
	files := []wireFile{
		{ID: "f1", TorrentID: "t1", Path: "a/1.mkv", Size: 4},
		{ID: "f2", TorrentID: "t1", Path: "a/2.mkv", Size: 6},
	}

	got, err := joinTorrents(torrents, files)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(10), got[0].Size)
	assert.Equal(t, map[string]uint64{"a/1.mkv": 4, "a/2.mkv": 6}, got[0].Files)
}

func TestJoinTorrentsFailsOnSizeMismatch(t *testing.T) {
	torrents := []wireTorrent{{ID: "t1", Size: 100, Files: 1}}
	files := []wireFile{{ID: "f1", TorrentID: "t1", Path: "a", Size: 10}}

	_, err := joinTorrents(torrents, files)
	var mismatch *JoinMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestJoinTorrentsFailsOnCountMismatch(t *testing.T) {
	torrents := []wireTorrent{{ID: "t1", Size: 10, Files: 2}}
	files := []wireFile{{ID: "f1", TorrentID: "t1", Path: "a", Size: 10}}

	_, err := joinTorrents(torrents, files)
	var mismatch *JoinMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestValidatePathRejectsNonUTF8(t *testing.T) {
	assert.NoError(t, validatePath("/clean/path"))
	assert.Error(t, validatePath(string([]byte{0xff, 0xfe})))
}
