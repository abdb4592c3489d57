package moveplan

import (
	"path/filepath"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
)

// SelectCovering implements the selection rule used for both the primary
// source-file set and the symlink-farm link set (spec §4.7 steps 2-3):
// a torrent is selected only if every one of its files, joined against its
// base_path, lies in pathSet. A torrent with some but not all files in
// pathSet is a fatal MixedTorrentError. After considering every torrent,
// every member of pathSet must be covered by some selected torrent, or the
// call fails DidNotMatchAllSourceFilesError.
func SelectCovering(pathSet map[string]struct{}, torrents []clientadapter.ClientTorrent) ([]clientadapter.ClientTorrent, error) {
	var selected []clientadapter.ClientTorrent
	covered := make(map[string]struct{})

	for _, t := range torrents {
		var absPaths []string
		inside := 0
		for rel := range t.Files {
			abs := filepath.Join(t.BasePath, rel)
			absPaths = append(absPaths, abs)
			if _, ok := pathSet[abs]; ok {
				inside++
			}
		}

		if inside == 0 {
			continue
		}
		if inside != len(absPaths) {
			return nil, &MixedTorrentError{TorrentID: t.ID}
		}

		selected = append(selected, t)
		for _, abs := range absPaths {
			covered[abs] = struct{}{}
		}
	}

	if len(covered) != len(pathSet) {
		return nil, &DidNotMatchAllSourceFilesError{Matched: len(covered), Total: len(pathSet)}
	}

	return selected, nil
}

// CheckComplete fails with IncompleteError if any torrent in torrents has
// progress less than 1.0 (spec §4.7 step 4).
func CheckComplete(torrents []clientadapter.ClientTorrent) error {
	for _, t := range torrents {
		if t.Progress != 1.0 {
			return &IncompleteError{TorrentID: t.ID, Progress: t.Progress}
		}
	}
	return nil
}

// pathSetFromSizes converts a size map's keys into a membership set.
func pathSetFromSizes(m map[string]uint64) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// pathSetFromSymlinks converts a symlink map's keys (the links themselves,
// not their targets) into a membership set for T_sym selection: T_sym is
// selected against the link paths, since that's what the symlink farm's
// torrents (if any are tracked as such) would reference.
func pathSetFromSymlinks(m map[string]string) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
