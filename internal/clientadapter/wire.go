package clientadapter

import "unicode/utf8"

// wireTorrent mirrors the `list -k torrent -o json` shape from spec §6.
type wireTorrent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	Progress    float64  `json:"progress"`
	TrackerURLs []string `json:"tracker_urls"`
	Size        uint64   `json:"size"`
	Files       int      `json:"files"`
}

// wireFile mirrors the `list -k file -o json` shape from spec §6.
type wireFile struct {
	ID        string `json:"id"`
	TorrentID string `json:"torrent_id"`
	Path      string `json:"path"`
	Size      uint64 `json:"size"`
}

// joinTorrents joins torrents and files on torrent_id and validates each
// torrent's resulting file set per spec §6's post-processing rule.
func joinTorrents(torrents []wireTorrent, files []wireFile) ([]ClientTorrent, error) {
	byTorrent := make(map[string][]wireFile, len(torrents))
	for _, f := range files {
		byTorrent[f.TorrentID] = append(byTorrent[f.TorrentID], f)
	}

	out := make([]ClientTorrent, 0, len(torrents))
	for _, t := range torrents {
		fileSet := byTorrent[t.ID]

		fileMap := make(map[string]uint64, len(fileSet))
		var sum uint64
		for _, f := range fileSet {
			fileMap[f.Path] = f.Size
			sum += f.Size
		}

		if sum != t.Size || len(fileMap) != t.Files {
			return nil, &JoinMismatchError{
				TorrentID: t.ID,
				WantSize:  t.Size,
				GotSize:   sum,
				WantCount: t.Files,
				GotCount:  len(fileMap),
			}
		}

		out = append(out, ClientTorrent{
			ID:          t.ID,
			Name:        t.Name,
			BasePath:    t.Path,
			Progress:    t.Progress,
			TrackerURLs: t.TrackerURLs,
			Size:        t.Size,
			Files:       fileMap,
		})
	}

	return out, nil
}

func validatePath(path string) error {
	if !utf8.ValidString(path) {
		return &NonUTF8PathError{Path: path}
	}
	return nil
}
