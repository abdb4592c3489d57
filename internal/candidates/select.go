package candidates

import (
	"fmt"

	"github.com/torrentreconcile/xseed/internal/pathalgebra"
	"github.com/torrentreconcile/xseed/internal/torrentmeta"
)

// NoCandidatesError reports that the index has no entry for a file's
// declared length at all.
type NoCandidatesError struct {
	Path []string
}

func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("no candidates for %v", e.Path)
}

// Assignment pairs a torrent-declared file with the absolute path chosen
// for it on disk.
type Assignment struct {
	File torrentmeta.File
	Src  string
}

// Select resolves, for every file the torrent declares, the best matching
// absolute path in idx, per spec §4.4.
//
// It first looks for a file whose candidate set contains exactly one path
// ending in that file's declared relative layout (via pathalgebra's suffix
// test), preferring the largest such file if more than one qualifies. That
// candidate's recovered seed root becomes the preferred_prefix fed into
// best_candidate for every file, including the anchor file itself.
//
// Duplicate assignments across files are possible and are not treated as
// errors at this layer; see DESIGN.md's Open Questions for why this is
// intentional.
func Select(files []torrentmeta.File, idx *Index) ([]Assignment, error) {
	candidatesByFile := make([][]pathalgebra.Components, len(files))
	for i, f := range files {
		paths := idx.Lookup(f.Length)
		if len(paths) == 0 {
			return nil, &NoCandidatesError{Path: f.Path}
		}
		comps := make([]pathalgebra.Components, len(paths))
		for j, p := range paths {
			comps[j] = pathalgebra.Split(p)
		}
		candidatesByFile[i] = comps
	}

	preferred := anchorPrefix(files, candidatesByFile)

	out := make([]Assignment, len(files))
	for i, f := range files {
		rel := pathalgebra.Components(f.Path)
		chosen := pathalgebra.BestCandidate(rel, candidatesByFile[i], preferred)
		out[i] = Assignment{File: f, Src: chosen.Join()}
	}
	return out, nil
}

// anchorPrefix implements the "unique suffix match on the largest file"
// heuristic: among files with exactly one candidate whose path ends in the
// file's declared layout, pick the largest file and return the seed root
// recovered from its sole match. Returns nil if no file qualifies.
func anchorPrefix(files []torrentmeta.File, candidatesByFile [][]pathalgebra.Components) pathalgebra.Components {
	var (
		bestLen  uint64
		bestRoot pathalgebra.Components
		found    bool
	)

	for i, f := range files {
		rel := pathalgebra.Components(f.Path)
		var (
			uniqueRoot pathalgebra.Components
			matches    int
		)
		for _, c := range candidatesByFile[i] {
			root, ok := pathalgebra.RemoveCommonSuffix(c, rel)
			if !ok {
				continue
			}
			uniqueRoot = root
			matches++
			if matches > 1 {
				break
			}
		}
		if matches != 1 {
			continue
		}
		if !found || f.Length > bestLen {
			found = true
			bestLen = f.Length
			bestRoot = uniqueRoot
		}
	}

	return bestRoot
}
