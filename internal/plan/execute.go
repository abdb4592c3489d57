package plan

import (
	"context"
	"fmt"
)

// Effector is the filesystem half of execution; it mirrors
// internal/effector.Effector without importing it, so this package stays a
// leaf the planners can depend on without pulling in execution backends.
type Effector interface {
	Mkdirp(ctx context.Context, path string) error
	Symlink(ctx context.Context, link, target string) error
	CreateOrUpdateSymlink(ctx context.Context, link, target string) error
	Rename(ctx context.Context, src, dst string) error
	CopyTree(ctx context.Context, src, dst string, progress func(uint64)) error
	CopyFile(ctx context.Context, src, dst string, progress func(uint64)) error
	RemoveFile(ctx context.Context, path string) error
	RemoveTree(ctx context.Context, path string) error
}

// Client is the torrent-client half of execution; it mirrors
// internal/clientadapter.Client for the same reason.
type Client interface {
	PauseTorrent(ctx context.Context, id string) error
	ResumeTorrent(ctx context.Context, id string) error
	MoveTorrent(ctx context.Context, id, newBasePath string) error
	AddTorrent(ctx context.Context, metainfoPath, seedRoot string) error
}

// Execute runs every Step in p, in order, against eff and client, stopping
// at the first failure. Execution errors are fatal per spec §7: this tool
// does not checkpoint mid-plan, so the caller is responsible for recovery.
func Execute(ctx context.Context, p Plan, eff Effector, client Client) error {
	for i, step := range p {
		if err := executeOne(ctx, step, eff, client); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Kind, err)
		}
	}
	return nil
}

// ExecuteFrom is Execute starting at index start, for callers resuming a
// plan after substituting steps (the move planner's rename-to-copy
// fallback rebuilds the plan from the mutation step onward and resumes
// from there rather than re-issuing already-completed pause steps).
func ExecuteFrom(ctx context.Context, p Plan, start int, eff Effector, client Client) error {
	for i := start; i < len(p); i++ {
		if err := executeOne(ctx, p[i], eff, client); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, p[i].Kind, err)
		}
	}
	return nil
}

func executeOne(ctx context.Context, step Step, eff Effector, client Client) error {
	switch step.Kind {
	case Mkdirp:
		return eff.Mkdirp(ctx, step.Path)
	case Symlink:
		return eff.Symlink(ctx, step.Link, step.Target)
	case CreateOrUpdateSymlink:
		return eff.CreateOrUpdateSymlink(ctx, step.Link, step.Target)
	case Rename:
		return eff.Rename(ctx, step.Src, step.Dst)
	case CopyTree:
		return eff.CopyTree(ctx, step.Src, step.Dst, nil)
	case CopyFile:
		return eff.CopyFile(ctx, step.Src, step.Dst, nil)
	case RemoveFile:
		return eff.RemoveFile(ctx, step.Path)
	case RemoveTree:
		return eff.RemoveTree(ctx, step.Path)
	case AddTorrent:
		return client.AddTorrent(ctx, step.MetainfoPath, step.SeedRoot)
	case PauseTorrent:
		return client.PauseTorrent(ctx, step.TorrentID)
	case ResumeTorrent:
		return client.ResumeTorrent(ctx, step.TorrentID)
	case MoveTorrent:
		return client.MoveTorrent(ctx, step.TorrentID, step.NewBasePath)
	default:
		return fmt.Errorf("unknown step kind %v", step.Kind)
	}
}
