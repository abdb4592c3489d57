package moveplan

import (
	"path/filepath"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/plan"
)

// Strategy selects how the source tree is relocated.
type Strategy int

const (
	Rename Strategy = iota
	CopyAndUnlink
)

// Input bundles everything the move planner needs to collect and plan, per
// spec §4.7.
type Input struct {
	Source          string
	SourceIsFile    bool
	Target          string
	SymlinkFarmRoots []string
	Strategy        Strategy
	Torrents        []clientadapter.ClientTorrent
}

// Collected is the outcome of the collection phase: the selected torrent
// set (T ∪ T_sym), the symlinks to update, and the new base path computed
// for each torrent in T.
type Collected struct {
	Selected    []clientadapter.ClientTorrent
	MainSet     []clientadapter.ClientTorrent // T: torrents covering source files directly
	SymlinkSet  []clientadapter.ClientTorrent // T_sym: torrents covering farm symlinks
	Symlinks    map[string]string             // link -> current_target
	NewBasePath map[string]string             // torrent ID -> new base_path, for MainSet only
}

// Collect implements spec §4.7's collection phase and new-base computation.
func Collect(in Input) (*Collected, error) {
	sourceFiles, isFile, err := CollectSource(in.Source)
	if err != nil {
		return nil, err
	}
	in.SourceIsFile = isFile

	mainSet, err := SelectCovering(pathSetFromSizes(sourceFiles), in.Torrents)
	if err != nil {
		return nil, err
	}

	symlinks, err := CollectSymlinks(in.SymlinkFarmRoots, sourceFiles)
	if err != nil {
		return nil, err
	}

	var symlinkSet []clientadapter.ClientTorrent
	if len(symlinks) > 0 {
		symlinkSet, err = SelectCovering(pathSetFromSymlinks(symlinks), in.Torrents)
		if err != nil {
			return nil, err
		}
	}

	all := append(append([]clientadapter.ClientTorrent(nil), mainSet...), symlinkSet...)
	if err := CheckComplete(all); err != nil {
		return nil, err
	}

	newBase := make(map[string]string, len(mainSet))
	for _, t := range mainSet {
		nb, err := CalculateNewBasePath(in.Source, in.SourceIsFile, in.Target, t)
		if err != nil {
			return nil, err
		}
		newBase[t.ID] = nb
	}

	return &Collected{
		Selected:    all,
		MainSet:     mainSet,
		SymlinkSet:  symlinkSet,
		Symlinks:    symlinks,
		NewBasePath: newBase,
	}, nil
}

// BuildSteps produces the execution plan for in/collected, per spec §4.7's
// execution plan, bracketed by pause/resume of every torrent in
// collected.Selected. The filesystem-mutation step (rename or copy_tree,
// the one step that can fail with a recoverable cross-device error) is
// always steps[len(pause steps)] so callers can special-case it for the
// rename-to-copy fallback.
func BuildSteps(in Input, collected *Collected) plan.Plan {
	var p plan.Plan

	for _, t := range collected.Selected {
		p = append(p, plan.PauseTorrentStep(t.ID))
	}

	dst := filepath.Join(in.Target, filepath.Base(in.Source))
	switch in.Strategy {
	case Rename:
		p = append(p, plan.RenameStep(in.Source, dst))
	case CopyAndUnlink:
		p = append(p, plan.CopyTreeStep(in.Source, dst))
	}

	for _, t := range collected.MainSet {
		p = append(p, plan.MoveTorrentStep(t.ID, collected.NewBasePath[t.ID]))
	}

	if in.Strategy == CopyAndUnlink {
		if in.SourceIsFile {
			p = append(p, plan.RemoveFileStep(in.Source))
		} else {
			p = append(p, plan.RemoveTreeStep(in.Source))
		}
	}

	sourceParent := filepath.Dir(in.Source)
	for link, oldTarget := range collected.Symlinks {
		remainder, err := stripPrefix(oldTarget, sourceParent)
		if err != nil {
			// Unreachable in practice: every symlink here was collected
			// because its target resolved inside the source set, which is
			// itself rooted at or under sourceParent.
			continue
		}
		newTarget := filepath.Join(in.Target, remainder)
		p = append(p, plan.CreateOrUpdateSymlinkStep(link, newTarget))
	}

	for _, t := range collected.Selected {
		p = append(p, plan.ResumeTorrentStep(t.ID))
	}

	return p
}
