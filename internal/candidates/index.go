// Package candidates builds a size-indexed view of one or more source
// directory trees and selects, for each file a torrent declares, which
// indexed path is the best match.
package candidates

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Index maps a file size to every absolute path on disk with that size,
// built once per importer invocation and treated as read-only afterward.
type Index struct {
	bySize map[uint64][]string
}

// Lookup returns the absolute paths indexed under size, or nil if none.
func (idx *Index) Lookup(size uint64) []string {
	return idx.bySize[size]
}

// Len returns the number of distinct files indexed, for diagnostics.
func (idx *Index) Len() int {
	n := 0
	for _, paths := range idx.bySize {
		n += len(paths)
	}
	return n
}

// BuildIndex walks each root in roots and indexes every plain file by size.
// Symlinks are skipped entirely (they are not candidates for cross-seeding:
// following one risks indexing the same physical file twice, or a file
// outside any configured root). Anything that is neither a regular file nor
// a directory is skipped and logged. Per-entry walk errors (permission
// denied, a file vanishing mid-walk, ...) are tolerated and logged; the walk
// continues with the remaining entries.
func BuildIndex(roots []string) (*Index, error) {
	idx := &Index{bySize: make(map[uint64][]string)}

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				log.Warn().Err(walkErr).Str("path", path).Msg("candidate index: skipping entry after walk error")
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.Type()&fs.ModeSymlink != 0 {
				log.Debug().Str("path", path).Msg("candidate index: skipping symlink")
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !d.Type().IsRegular() {
				log.Warn().Str("path", path).Str("mode", d.Type().String()).Msg("candidate index: skipping non-regular entry")
				return nil
			}

			info, err := d.Info()
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("candidate index: skipping entry, stat failed")
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("candidate index: skipping entry, could not absolutize path")
				return nil
			}

			size := uint64(info.Size())
			idx.bySize[size] = append(idx.bySize[size], abs)
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return idx, nil
}
