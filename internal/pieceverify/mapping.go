package pieceverify

import (
	"strings"

	"github.com/torrentreconcile/xseed/internal/candidates"
)

// Mapping is, for one torrent, the chosen source path for every metainfo
// path the torrent declares. It is built once from a candidate selection and
// is immutable and safe for concurrent read access by verifier workers.
type Mapping struct {
	bySrcPath map[string]string
}

// NewMapping builds a Mapping from a candidate selection.
func NewMapping(assignments []candidates.Assignment) *Mapping {
	m := &Mapping{bySrcPath: make(map[string]string, len(assignments))}
	for _, a := range assignments {
		m.bySrcPath[key(a.File.Path)] = a.Src
	}
	return m
}

// Resolve returns the absolute source path mapped to metainfo path, or
// ("", false) if the path has no mapping.
func (m *Mapping) Resolve(metainfoPath []string) (string, bool) {
	src, ok := m.bySrcPath[key(metainfoPath)]
	return src, ok
}

func key(path []string) string {
	return strings.Join(path, "/")
}
