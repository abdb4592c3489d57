// Package updatepaths implements the "update-paths" subcommand
// (SUPPLEMENTED FEATURES, grounded on
// original_source/src/subcommands/update_paths.rs): after a source tree
// has moved outside this tool's knowledge (e.g. a manual mv, or recovery
// from a failed move), repoint every client torrent and every symlink in
// the given farm directories that still reference the old location.
package updatepaths

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/effector"
	"github.com/torrentreconcile/xseed/pkg/pathcmp"
)

// Options controls one update-paths run.
type Options struct {
	Source         string
	Target         string
	SymlinkFarmDir []string
}

// Result summarizes what was repointed.
type Result struct {
	TorrentsUpdated int
	SymlinksUpdated int
}

// Service ties the rewrite to a torrent client and filesystem effector.
type Service struct {
	Client   clientadapter.Client
	Effector effector.Effector
}

// New constructs a Service.
func New(client clientadapter.Client, eff effector.Effector) *Service {
	return &Service{Client: client, Effector: eff}
}

// Run rewrites every torrent base path and symlink target that falls under
// opts.Source, rebasing it under opts.Target. Unlike the move subcommand
// this never touches the filesystem entries being pointed at — it only
// repairs references, on the assumption the tree already moved by other
// means.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}
	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("resolve target: %w", err)
	}

	var result Result

	torrents, err := s.Client.ListTorrents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list torrents: %w", err)
	}
	for _, t := range torrents {
		remainder, ok := stripPrefix(source, t.BasePath)
		if !ok {
			continue
		}
		newBasePath := filepath.Join(target, remainder)
		log.Info().Str("torrent", t.ID).Str("from", t.BasePath).Str("to", newBasePath).Msg("update-paths: repointing torrent")
		if err := s.Client.MoveTorrent(ctx, t.ID, newBasePath); err != nil {
			return nil, fmt.Errorf("move torrent %s: %w", t.ID, err)
		}
		result.TorrentsUpdated++
	}

	for _, dir := range opts.SymlinkFarmDir {
		links, err := collectAllSymlinks(dir)
		if err != nil {
			return nil, fmt.Errorf("scan symlink farm %s: %w", dir, err)
		}
		for _, link := range links {
			currentTarget, err := os.Readlink(link)
			if err != nil {
				return nil, fmt.Errorf("read symlink %s: %w", link, err)
			}
			if !filepath.IsAbs(currentTarget) {
				currentTarget = filepath.Join(filepath.Dir(link), currentTarget)
			}

			remainder, ok := stripPrefix(source, currentTarget)
			if !ok {
				continue
			}
			newTarget := filepath.Join(target, remainder)
			log.Info().Str("symlink", link).Str("from", currentTarget).Str("to", newTarget).Msg("update-paths: repointing symlink")
			if err := s.Effector.CreateOrUpdateSymlink(ctx, link, newTarget); err != nil {
				return nil, fmt.Errorf("update symlink %s: %w", link, err)
			}
			result.SymlinksUpdated++
		}
	}

	return &result, nil
}

// stripPrefix reports whether path is source itself or lies under it,
// returning the remainder relative to source (empty string when path ==
// source). Unlike moveplan's stripPrefix, this is not limited to a single
// selected torrent's base path: it's evaluated against every torrent and
// every symlink target independently. Comparison is done on
// pathcmp-normalized forms since a torrent's reported base path may use
// different separators than the locally resolved source/target (the client
// adapter's wire format is forward-slashed regardless of host OS).
func stripPrefix(source, path string) (string, bool) {
	normSource := pathcmp.NormalizePath(source)
	normPath := pathcmp.NormalizePath(path)

	if normPath == normSource {
		return "", true
	}
	prefix := normSource + "/"
	if !strings.HasPrefix(normPath, prefix) {
		return "", false
	}
	return strings.TrimPrefix(normPath, prefix), true
}

// collectAllSymlinks walks dir and returns every symlink found, regardless
// of what it points to — unlike moveplan.CollectSymlinks, which filters to
// links pointing into a given source-file set, update-paths must inspect
// every symlink in the farm individually.
func collectAllSymlinks(dir string) ([]string, error) {
	var links []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		links = append(links, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}
