// Package crossseedplan turns a verified Mapping into a Plan of effector
// and client-adapter steps, per spec §4.6: seed in place when the source
// layout already matches, otherwise mirror it with symlinks.
package crossseedplan

import (
	"path/filepath"
	"sort"

	"github.com/torrentreconcile/xseed/internal/candidates"
	"github.com/torrentreconcile/xseed/internal/pathalgebra"
	"github.com/torrentreconcile/xseed/internal/plan"
	"github.com/torrentreconcile/xseed/internal/torrentmeta"
)

// Options controls how a Plan is built.
type Options struct {
	// TargetDir is the directory mirror roots are created under.
	TargetDir string
	// MetainfoPath is passed through to AddTorrent steps.
	MetainfoPath string
	// VerifyOnly suppresses the AddTorrent step when true.
	VerifyOnly bool
}

// Build constructs a Plan for tor given the chosen mapping, per the
// single-file and multi-file cases in spec §4.6.
func Build(tor *torrentmeta.Torrent, assignments []candidates.Assignment, opts Options) (plan.Plan, error) {
	host, err := tor.AnnounceHost()
	if err != nil {
		return nil, err
	}

	if tor.Info.IsSingleFile {
		return buildSingleFile(assignments[0], host, opts)
	}
	return buildMultiFile(assignments, host, opts)
}

func buildSingleFile(a candidates.Assignment, host string, opts Options) (plan.Plan, error) {
	rel := filepath.Join(a.File.Path...)
	base := filepath.Base(a.Src)

	if filepath.Base(rel) == base {
		seedRoot := filepath.Dir(a.Src)
		return addTorrentOnly(seedRoot, opts), nil
	}

	mirrorRoot := filepath.Join(opts.TargetDir, host)
	link := filepath.Join(mirrorRoot, rel)

	p := plan.Plan{
		plan.MkdirpStep(mirrorRoot),
		plan.SymlinkStep(link, a.Src),
	}
	return appendAddTorrent(p, mirrorRoot, opts), nil
}

func buildMultiFile(assignments []candidates.Assignment, host string, opts Options) (plan.Plan, error) {
	commonPrefix, coherent := commonSeedRoot(assignments)
	if coherent {
		return addTorrentOnly(commonPrefix, opts), nil
	}

	mirrorRoot := findMirrorRoot(opts.TargetDir, host)

	var p plan.Plan
	seenParents := make(map[string]bool)
	for _, a := range sortedByRelPath(assignments) {
		rel := filepath.Join(a.File.Path...)
		linkPath := filepath.Join(mirrorRoot, rel)
		parent := filepath.Dir(linkPath)
		if !seenParents[parent] {
			seenParents[parent] = true
			p = append(p, plan.MkdirpStep(parent))
		}
		p = append(p, plan.SymlinkStep(linkPath, a.Src))
	}

	return appendAddTorrent(p, mirrorRoot, opts), nil
}

// commonSeedRoot applies remove_common_suffix to every (src, rel) pair and
// reports whether they all agree on the same non-null prefix.
func commonSeedRoot(assignments []candidates.Assignment) (string, bool) {
	var prefix pathalgebra.Components
	for i, a := range assignments {
		rel := pathalgebra.Components(a.File.Path)
		src := pathalgebra.Split(a.Src)

		got, ok := pathalgebra.RemoveCommonSuffix(src, rel)
		if !ok {
			return "", false
		}
		if i == 0 {
			prefix = got
			continue
		}
		if !equalComponents(prefix, got) {
			return "", false
		}
	}
	return prefix.Join(), true
}

func addTorrentOnly(seedRoot string, opts Options) plan.Plan {
	if opts.VerifyOnly {
		return nil
	}
	return plan.Plan{plan.AddTorrentStep(opts.MetainfoPath, seedRoot)}
}

func appendAddTorrent(p plan.Plan, seedRoot string, opts Options) plan.Plan {
	if opts.VerifyOnly {
		return p
	}
	return append(p, plan.AddTorrentStep(opts.MetainfoPath, seedRoot))
}

func findMirrorRoot(targetDir, host string) string {
	return filepath.Join(targetDir, host)
}

func sortedByRelPath(assignments []candidates.Assignment) []candidates.Assignment {
	out := append([]candidates.Assignment(nil), assignments...)
	sort.Slice(out, func(i, j int) bool {
		return filepath.Join(out[i].File.Path...) < filepath.Join(out[j].File.Path...)
	})
	return out
}

func equalComponents(a, b pathalgebra.Components) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
