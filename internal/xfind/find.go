// Package xfind implements the "find" subcommand (SUPPLEMENTED FEATURES,
// grounded on original_source/src/subcommands/find.rs): list which client
// torrents are seeded from a given path, by intersecting a strict file
// scan of that path with the client's torrent/file listing.
package xfind

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/moveplan"
)

// Find returns every torrent reported by client whose files are entirely
// contained within path (a file or directory). Unlike the move planner's
// SelectCovering, a torrent only partially overlapping path is simply
// excluded here rather than treated as an error — find is read-only and
// has no data-loss risk to guard against.
func Find(ctx context.Context, client clientadapter.Client, path string) ([]clientadapter.ClientTorrent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	files, _, err := moveplan.CollectSource(absPath)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", absPath, err)
	}

	torrents, err := client.ListTorrents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list torrents: %w", err)
	}

	var found []clientadapter.ClientTorrent
	for _, t := range torrents {
		if len(t.Files) == 0 {
			continue
		}
		allInside := true
		for rel := range t.Files {
			if _, ok := files[filepath.Join(t.BasePath, rel)]; !ok {
				allInside = false
				break
			}
		}
		if allInside {
			found = append(found, t)
		}
	}

	return found, nil
}
