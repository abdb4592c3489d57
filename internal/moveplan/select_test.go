package moveplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
)

func set(paths ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		out[p] = struct{}{}
	}
	return out
}

func TestSelectCoveringSelectsFullyContainedTorrents(t *testing.T) {
	torrents := []clientadapter.ClientTorrent{
		{ID: "t1", BasePath: "/src", Files: map[string]uint64{"a.mkv": 1}},
	}
	paths := set("/src/a.mkv")

	got, err := SelectCovering(paths, torrents)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestSelectCoveringFailsOnMixedTorrent(t *testing.T) {
	torrents := []clientadapter.ClientTorrent{
		{ID: "t1", BasePath: "/src", Files: map[string]uint64{"a.mkv": 1, "b.mkv": 1}},
	}
	paths := set("/src/a.mkv") // b.mkv is not in the source set

	_, err := SelectCovering(paths, torrents)
	var mixed *MixedTorrentError
	require.ErrorAs(t, err, &mixed)
}

func TestSelectCoveringFailsWhenSourceNotFullyCovered(t *testing.T) {
	torrents := []clientadapter.ClientTorrent{
		{ID: "t1", BasePath: "/src", Files: map[string]uint64{"a.mkv": 1}},
	}
	paths := set("/src/a.mkv", "/src/b.mkv") // b.mkv belongs to no torrent

	_, err := SelectCovering(paths, torrents)
	var notAll *DidNotMatchAllSourceFilesError
	require.ErrorAs(t, err, &notAll)
	assert.Equal(t, 1, notAll.Matched)
	assert.Equal(t, 2, notAll.Total)
}

func TestCheckCompleteFailsOnIncompleteTorrent(t *testing.T) {
	torrents := []clientadapter.ClientTorrent{{ID: "t1", Progress: 0.5}}
	err := CheckComplete(torrents)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
}

func TestCheckCompletePassesWhenAllDone(t *testing.T) {
	torrents := []clientadapter.ClientTorrent{{ID: "t1", Progress: 1.0}}
	assert.NoError(t, CheckComplete(torrents))
}
