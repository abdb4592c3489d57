package pieceverify

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/torrentreconcile/xseed/internal/torrentmeta"
)

// DefaultSampleSize is k in spec §4.5's sampling mode.
const DefaultSampleSize = 3

// Sample picks, for each distinct metainfo path touched by pieces, up to k
// pieces that touch it, chosen uniformly at random without replacement, then
// returns the deduplicated union in ascending index order (so verification
// order stays deterministic even though the selection itself is random).
func Sample(pieces []torrentmeta.Piece, k int, r *rand.Rand) []torrentmeta.Piece {
	if k <= 0 {
		k = DefaultSampleSize
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	byPath := make(map[string][]int)
	var order []string
	for i, p := range pieces {
		seen := make(map[string]bool)
		for _, s := range p.Slices {
			pk := strings.Join(s.Path, "/")
			if seen[pk] {
				continue
			}
			seen[pk] = true
			if _, ok := byPath[pk]; !ok {
				order = append(order, pk)
			}
			byPath[pk] = append(byPath[pk], i)
		}
	}

	chosen := make(map[int]bool)
	for _, pk := range order {
		indices := byPath[pk]
		r.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
		take := min(k, len(indices))
		for _, idx := range indices[:take] {
			chosen[idx] = true
		}
	}

	out := make([]int, 0, len(chosen))
	for idx := range chosen {
		out = append(out, idx)
	}
	sort.Ints(out)

	result := make([]torrentmeta.Piece, len(out))
	for i, idx := range out {
		result[i] = pieces[idx]
	}
	return result
}
