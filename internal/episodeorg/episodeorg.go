// Package episodeorg groups single-file episode torrents into per-episode
// directories, grounded on original_source/src/subcommands/organize_episodes.rs:
// for each requested file whose torrent has exactly one file, derive a
// directory name from the parsed release, hardlink the file into it, point
// the torrent at the new directory, then remove the original path. Unlike
// the original's one fixed regex, directory names are derived from
// github.com/moistari/rls's release parser, the same library the teacher
// uses throughout its cross-seed matching.
package episodeorg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"strings"

	"github.com/moistari/rls"
	"github.com/rs/zerolog/log"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/omdb"
	"github.com/torrentreconcile/xseed/pkg/fsutil"
	"github.com/torrentreconcile/xseed/pkg/hardlink"
	"github.com/torrentreconcile/xseed/pkg/pathutil"
)

// TitleLookup confirms a parsed release title resolves to a known series
// before a directory is created for it. *omdb.Client satisfies this; it is
// optional (nil skips the check) since not every deployment has an OMDB API
// key configured.
type TitleLookup interface {
	Lookup(ctx context.Context, title string) (*omdb.Title, error)
}

// Options controls one organize run.
type Options struct {
	// BaseDir is the directory new per-episode directories are created
	// under.
	BaseDir string
	// Paths restricts processing to these absolute file paths (the
	// "files to process" argument in the original tool).
	Paths map[string]struct{}
	// DryRun narrates actions without touching disk or the client.
	DryRun bool
}

// Outcome is what happened to one requested file.
type Outcome struct {
	Path      string
	Torrent   string
	NewDir    string
	Organized bool
	Reason    string // set when Organized is false
}

// Service ties the organizer to a torrent client.
type Service struct {
	Client clientadapter.Client
	// TitleLookup, when set, confirms a parsed title resolves to a known
	// series. A miss is logged and does not block organizing; it is a
	// sanity check, not a gate, since OMDB's series catalog is incomplete
	// for many cross-seeded releases.
	TitleLookup TitleLookup
}

// New constructs a Service.
func New(client clientadapter.Client) *Service {
	return &Service{Client: client}
}

// Organize processes every torrent reported by the client that has exactly
// one file matching a path in opts.Paths, per the original tool's "punting
// on the harder problem" simplification: multi-file torrents are skipped.
func (s *Service) Organize(ctx context.Context, opts Options) ([]Outcome, error) {
	torrents, err := s.Client.ListTorrents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list torrents: %w", err)
	}

	var outcomes []Outcome
	for _, t := range torrents {
		if len(t.Files) != 1 {
			continue
		}

		for rel, size := range t.Files {
			path := filepath.Join(t.BasePath, rel)
			if _, want := opts.Paths[path]; !want {
				continue
			}

			outcome := Outcome{Path: path, Torrent: t.ID}
			if size != t.Size {
				outcome.Reason = fmt.Sprintf("file size %d does not match torrent size %d", size, t.Size)
				log.Warn().Str("path", path).Str("torrent", t.ID).Msg(outcome.Reason)
				outcomes = append(outcomes, outcome)
				continue
			}

			if err := s.organizeOne(ctx, &outcome, opts); err != nil {
				outcome.Reason = err.Error()
				log.Warn().Err(err).Str("path", path).Str("torrent", t.ID).Msg("organize-episodes: skipping file")
			}
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

func (s *Service) organizeOne(ctx context.Context, outcome *Outcome, opts Options) error {
	fileName := filepath.Base(outcome.Path)
	dirName, ok := directoryName(fileName)
	if !ok {
		return fmt.Errorf("unable to derive a release directory name from %q", fileName)
	}

	dirPath := filepath.Join(opts.BaseDir, dirName)
	outcome.NewDir = dirPath

	if s.TitleLookup != nil {
		r := rls.ParseString(fileName)
		if _, err := s.TitleLookup.Lookup(ctx, r.Title); err != nil {
			log.Warn().Err(err).Str("title", r.Title).Msg("organize-episodes: omdb lookup did not confirm title, organizing anyway")
		}
	}

	if opts.DryRun {
		log.Info().Str("dir", dirPath).Str("file", outcome.Path).Msg("organize-episodes: dry run, would create directory, hardlink, and move torrent")
		outcome.Organized = true
		return nil
	}

	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dirPath, err)
	}

	linkPath := filepath.Join(dirPath, fileName)
	if sameFS, err := fsutil.SameFilesystem(outcome.Path, opts.BaseDir); err == nil && !sameFS {
		return fmt.Errorf("source %q and base directory %q are on different filesystems, hardlinking is not possible", outcome.Path, opts.BaseDir)
	}
	if err := hardlink.Create(outcome.Path, linkPath); err != nil {
		return err
	}

	if err := s.Client.MoveTorrent(ctx, outcome.Torrent, dirPath); err != nil {
		return fmt.Errorf("move torrent %s: %w", outcome.Torrent, err)
	}

	if err := os.Remove(outcome.Path); err != nil {
		return fmt.Errorf("remove original %q: %w", outcome.Path, err)
	}

	outcome.Organized = true
	return nil
}

// directoryName derives a per-episode directory name from a parsed
// release, combining the show's title/season (e.g. "Show.Name.S01") with
// the release's technical trailer (resolution, source, group) the way the
// original's regex captured a "header" and "trailer" group around the
// episode number.
func directoryName(fileName string) (string, bool) {
	r := rls.ParseString(fileName)
	if r.Title == "" || r.Series == 0 {
		return "", false
	}

	header := fmt.Sprintf("%s.S%02d", strings.ReplaceAll(strings.TrimSpace(r.Title), " ", "."), r.Series)

	trailer := r.Resolution
	if r.Source != "" {
		if trailer != "" {
			trailer += "."
		}
		trailer += r.Source
	}
	if r.Group != "" {
		if trailer != "" {
			trailer += "-"
		}
		trailer += r.Group
	}
	if trailer == "" {
		return "", false
	}

	return pathutil.SanitizePathSegment(header + "." + trailer), true
}
