// Package pathalgebra implements the suffix/prefix path arithmetic the
// importer uses to decide whether a candidate file's absolute path already
// matches a torrent's declared relative layout, and to rank candidates when
// it doesn't.
package pathalgebra

import "sort"

// Components is a path broken into its slash-separated parts, in order.
// An absolute path keeps a leading empty component so it round-trips
// through Join (e.g. "/a/b" -> ["", "a", "b"]).
type Components []string

// Join reassembles components with "/" separators.
func (c Components) Join() string {
	if len(c) == 0 {
		return ""
	}
	out := c[0]
	for _, part := range c[1:] {
		out += "/" + part
	}
	return out
}

// Split breaks an absolute or relative slash-separated path into
// Components, preserving a leading empty component for absolute paths so
// the result round-trips through Join.
func Split(p string) Components {
	if p == "" {
		return nil
	}
	var parts []string
	start := 0
	if p[0] == '/' {
		parts = append(parts, "")
		start = 1
	}
	cur := start
	for i := start; i < len(p); i++ {
		if p[i] == '/' {
			if i > cur {
				parts = append(parts, p[cur:i])
			}
			cur = i + 1
		}
	}
	if cur < len(p) {
		parts = append(parts, p[cur:])
	}
	return parts
}

// RemoveCommonSuffix compares a and b from the right. While trailing
// components match, both are consumed. If b is exhausted before a, and at
// least one component of a remains, the remaining prefix of a is returned.
// Otherwise (b has an unmatched component left, or a is fully consumed)
// false is returned — this deliberately treats "a fully consumed" as "no
// remainder" rather than an empty-but-present prefix (see spec §9 Open
// Questions: revisit only if directed).
func RemoveCommonSuffix(a, b Components) (Components, bool) {
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 && a[i] == b[j] {
		i--
		j--
	}
	if j >= 0 {
		// b still has unmatched components: a does not end in b.
		return nil, false
	}
	if i < 0 {
		// a was fully consumed matching b: no remainder.
		return nil, false
	}
	return append(Components(nil), a[:i+1]...), true
}

// sharedSuffixLen returns how many trailing components a and b share.
func sharedSuffixLen(a, b Components) int {
	i, j := len(a)-1, len(b)-1
	n := 0
	for i >= 0 && j >= 0 && a[i] == b[j] {
		i--
		j--
		n++
	}
	return n
}

// sharedPrefixLen returns how many leading components a and b share.
func sharedPrefixLen(a, b Components) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// candidateKey is the comparison key used by BestCandidate: larger is
// better, lexicographically, suffix match first, then prefix match, then
// path string as a final deterministic tiebreaker.
type candidateKey struct {
	path         string
	suffixShared int
	prefixShared int
}

func (k candidateKey) less(other candidateKey) bool {
	if k.suffixShared != other.suffixShared {
		return k.suffixShared < other.suffixShared
	}
	if k.prefixShared != other.prefixShared {
		return k.prefixShared < other.prefixShared
	}
	return k.path < other.path
}

// BestCandidate picks the candidate whose absolute path best matches
// relPath: most shared trailing components with relPath, then most shared
// leading components with preferredPrefix (which may be nil), then the
// lexicographically greatest path as a stable tiebreaker. candidates must be
// non-empty.
func BestCandidate(relPath Components, candidates []Components, preferredPrefix Components) Components {
	keys := make([]candidateKey, len(candidates))
	for i, c := range candidates {
		keys[i] = candidateKey{
			path:         c.Join(),
			suffixShared: sharedSuffixLen(c, relPath),
			prefixShared: sharedPrefixLen(c, preferredPrefix),
		}
	}

	best := 0
	for i := 1; i < len(keys); i++ {
		if best == i {
			continue
		}
		if keys[best].less(keys[i]) {
			best = i
		}
	}
	return candidates[best]
}

// SortedCopy returns a stably-sorted copy of paths, used where callers need
// deterministic iteration order over a set of candidates (e.g. for logging).
func SortedCopy(paths []Components) []Components {
	out := append([]Components(nil), paths...)
	sort.Slice(out, func(i, j int) bool { return out[i].Join() < out[j].Join() })
	return out
}
