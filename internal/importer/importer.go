// Package importer orchestrates the cross-seed import pipeline: decode a
// .torrent file, select candidate source files from a pre-built index,
// verify the selection by hashing pieces, emit a plan, and optionally
// execute it. This is the "hard part" of spec §1: every other package here
// implements one stage; importer wires them together the way the teacher's
// service packages wire their own stages, per-item error handling included.
package importer

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/torrentreconcile/xseed/internal/candidates"
	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/crossseedplan"
	"github.com/torrentreconcile/xseed/internal/effector"
	"github.com/torrentreconcile/xseed/internal/pieceverify"
	"github.com/torrentreconcile/xseed/internal/plan"
	"github.com/torrentreconcile/xseed/internal/torrentmeta"
)

// Options controls one import run.
type Options struct {
	// TargetDir is where mirror roots are created when a direct seed isn't
	// possible.
	TargetDir string
	// VerifyOnly suppresses AddTorrent steps in the emitted plan.
	VerifyOnly bool
	// Sample, when true, verifies only a sampled subset of pieces (spec
	// §4.5's sampling mode) rather than every piece.
	Sample bool
	// SampleK is the per-path sample size; 0 uses pieceverify.DefaultSampleSize.
	SampleK int
}

// Result is the outcome of importing a single .torrent file. Err is non-nil
// when any stage failed; the earlier fields are populated as far as the
// pipeline got before failing, for diagnosis.
type Result struct {
	MetainfoPath string
	Torrent      *torrentmeta.Torrent
	Assignments  []candidates.Assignment
	Failed       [][]string
	Plan         plan.Plan
	Err          error
}

// Service ties the importer's stages to a candidate index, a torrent
// client, and a filesystem effector.
type Service struct {
	Index    *candidates.Index
	Client   clientadapter.Client
	Effector effector.Effector
}

// New constructs a Service. client and eff may be nil if the caller only
// intends to plan (not execute); ImportOne never needs them.
func New(idx *candidates.Index, client clientadapter.Client, eff effector.Effector) *Service {
	return &Service{Index: idx, Client: client, Effector: eff}
}

// ImportOne runs the full pipeline for one .torrent file. It never panics on
// a per-torrent failure; the error is attached to Result.Err so callers
// running a batch can continue with the next file, per spec §7's policy
// that discovery/verification errors don't abort the batch.
func (s *Service) ImportOne(ctx context.Context, metainfoPath string, opts Options) *Result {
	res := &Result{MetainfoPath: metainfoPath}

	f, err := os.Open(metainfoPath)
	if err != nil {
		res.Err = fmt.Errorf("open metainfo: %w", err)
		return res
	}
	defer f.Close()

	tor, err := torrentmeta.Decode(f)
	if err != nil {
		res.Err = fmt.Errorf("decode metainfo: %w", err)
		return res
	}
	res.Torrent = tor

	assignments, err := candidates.Select(tor.Info.Files, s.Index)
	if err != nil {
		res.Err = fmt.Errorf("select candidates: %w", err)
		return res
	}
	res.Assignments = assignments

	mapping := pieceverify.NewMapping(assignments)

	pieces := tor.Info.Pieces
	if opts.Sample {
		k := opts.SampleK
		if k <= 0 {
			k = pieceverify.DefaultSampleSize
		}
		pieces = pieceverify.Sample(pieces, k, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}

	report, err := pieceverify.Verify(ctx, pieces, mapping, nil)
	if err != nil {
		res.Err = fmt.Errorf("verify pieces: %w", err)
		return res
	}
	if len(report.Failed) > 0 {
		res.Failed = report.Failed
		res.Err = fmt.Errorf("%w: %d path(s) failed verification", ErrVerificationFailed, len(report.Failed))
		return res
	}

	p, err := crossseedplan.Build(tor, assignments, crossseedplan.Options{
		TargetDir:    opts.TargetDir,
		MetainfoPath: metainfoPath,
		VerifyOnly:   opts.VerifyOnly,
	})
	if err != nil {
		res.Err = fmt.Errorf("build plan: %w", err)
		return res
	}
	res.Plan = p

	return res
}

// ImportBatch runs ImportOne over every path, logging and continuing past
// per-torrent failures rather than aborting the whole run.
func (s *Service) ImportBatch(ctx context.Context, metainfoPaths []string, opts Options) []*Result {
	results := make([]*Result, 0, len(metainfoPaths))
	for _, path := range metainfoPaths {
		res := s.ImportOne(ctx, path, opts)
		if res.Err != nil {
			log.Warn().Err(res.Err).Str("metainfo", path).Msg("cross-seed import failed for torrent")
		} else {
			log.Info().Str("metainfo", path).Int("steps", len(res.Plan)).Msg("cross-seed plan built")
		}
		results = append(results, res)
	}
	return results
}

// Execute runs p's steps in order against s.Effector and s.Client. It
// stops at the first failing step — execution errors are fatal per spec
// §7, since this tool does not checkpoint mid-plan.
func (s *Service) Execute(ctx context.Context, p plan.Plan) error {
	return plan.Execute(ctx, p, s.Effector, s.Client)
}
