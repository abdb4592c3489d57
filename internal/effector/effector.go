// Package effector performs (or, in dry-run mode, narrates) the filesystem
// operations a Plan describes, per spec §4.8. Both variants share the same
// interface so planners and orchestration code never need to know which one
// they're driving.
package effector

import "context"

// Effector is the filesystem half of plan execution. It deliberately omits
// the torrent-client operations (add/pause/resume/move) — those are issued
// directly against a clientadapter.Client by the orchestrator, since they
// have no "dry-run but still touch disk" ambiguity to resolve.
type Effector interface {
	// Mkdirp creates path and any missing parents. Idempotent: an existing
	// directory at path is not an error.
	Mkdirp(ctx context.Context, path string) error

	// Symlink creates a new symlink at link pointing to target. Fails if
	// link already exists.
	Symlink(ctx context.Context, link, target string) error

	// CreateOrUpdateSymlink creates link pointing to target, replacing any
	// existing entry at link first. Idempotent: if link already points to
	// target, this is a no-op.
	CreateOrUpdateSymlink(ctx context.Context, link, target string) error

	// Rename moves src to dst in place. Returns an error satisfying
	// IsCrossDevice if src and dst are on different filesystems.
	Rename(ctx context.Context, src, dst string) error

	// CopyTree recursively copies the src tree to dst, invoking progress
	// (if non-nil) with cumulative bytes copied across the whole tree.
	CopyTree(ctx context.Context, src, dst string, progress func(bytesCopied uint64)) error

	// CopyFile copies one file from src to dst, invoking progress (if
	// non-nil) with cumulative bytes copied.
	CopyFile(ctx context.Context, src, dst string, progress func(bytesCopied uint64)) error

	// RemoveFile deletes the file at path.
	RemoveFile(ctx context.Context, path string) error

	// RemoveTree recursively deletes the directory at path.
	RemoveTree(ctx context.Context, path string) error
}

var (
	_ Effector = (*Live)(nil)
	_ Effector = (*DryRun)(nil)
)
