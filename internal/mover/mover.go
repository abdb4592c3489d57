// Package mover orchestrates spec §4.7's move planner: collect the
// torrents and symlinks affected by relocating a source path, build the
// pause/rename-or-copy/move/resume plan, execute it, and transparently
// fall back from rename to copy-and-unlink on a cross-device error, per
// spec §4.7's "This path is also the fallback when rename reports a
// cross-device error."
package mover

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/effector"
	"github.com/torrentreconcile/xseed/internal/moveplan"
	"github.com/torrentreconcile/xseed/internal/plan"
)

// Options controls one move run.
type Options struct {
	// SymlinkFarmRoots are scanned for symlinks pointing into the source
	// set, per spec §4.7's collection phase step 3.
	SymlinkFarmRoots []string
	// Strategy is the preferred relocation strategy. Rename is attempted
	// first and falls back to copy-and-unlink on a cross-device error;
	// CopyAndUnlink means "skip straight to copy", useful when the caller
	// already knows source and target are on different filesystems.
	Strategy moveplan.Strategy
}

// Result is the outcome of a successful move.
type Result struct {
	Collected *moveplan.Collected
	Plan      plan.Plan
	// UsedCopyFallback is true when a rename attempt hit a cross-device
	// error and the move completed via copy-and-unlink instead.
	UsedCopyFallback bool
}

// Service ties the move planner's pure collection/planning logic to a
// torrent client and a filesystem effector.
type Service struct {
	Client   clientadapter.Client
	Effector effector.Effector
}

// New constructs a Service.
func New(client clientadapter.Client, eff effector.Effector) *Service {
	return &Service{Client: client, Effector: eff}
}

// Move relocates source under target, per spec §4.7. Discovery/collection
// errors (MixedTorrent, DidNotMatchAllSourceFiles, Incomplete, the
// calculate_new_base_path errors) are returned as-is for the caller to
// report; execution errors are fatal once any filesystem mutation has
// begun, since this tool does not checkpoint mid-move.
func (s *Service) Move(ctx context.Context, source, target string, opts Options) (*Result, error) {
	absSource, absTarget, err := moveplan.CheckPreconditions(source, target)
	if err != nil {
		return nil, fmt.Errorf("check preconditions: %w", err)
	}

	torrents, err := s.Client.ListTorrents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list torrents: %w", err)
	}

	sourceInfo, err := os.Lstat(absSource)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	in := moveplan.Input{
		Source:           absSource,
		SourceIsFile:     sourceInfo.Mode().IsRegular(),
		Target:           absTarget,
		SymlinkFarmRoots: opts.SymlinkFarmRoots,
		Strategy:         opts.Strategy,
		Torrents:         torrents,
	}

	collected, err := moveplan.Collect(in)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	p := moveplan.BuildSteps(in, collected)
	pauseCount := len(collected.Selected)

	if err := plan.Execute(ctx, p[:pauseCount], s.Effector, s.Client); err != nil {
		return nil, fmt.Errorf("pause torrents: %w", err)
	}

	usedFallback := false
	if err := plan.ExecuteFrom(ctx, p, pauseCount, s.Effector, s.Client); err != nil {
		if in.Strategy != moveplan.Rename || !isMutationCrossDeviceError(err) {
			return nil, fmt.Errorf("execute move: %w", err)
		}

		log.Warn().Str("source", absSource).Str("target", absTarget).
			Msg("rename crossed filesystems, falling back to copy-and-unlink")

		in.Strategy = moveplan.CopyAndUnlink
		p = moveplan.BuildSteps(in, collected)
		usedFallback = true

		if err := plan.ExecuteFrom(ctx, p, pauseCount, s.Effector, s.Client); err != nil {
			return nil, fmt.Errorf("execute move (copy fallback): %w", err)
		}
	}

	return &Result{Collected: collected, Plan: p, UsedCopyFallback: usedFallback}, nil
}

// isMutationCrossDeviceError reports whether err (as wrapped by
// plan.Execute/ExecuteFrom) originates from the rename step crossing
// filesystems.
func isMutationCrossDeviceError(err error) bool {
	return effector.IsCrossDevice(err)
}
