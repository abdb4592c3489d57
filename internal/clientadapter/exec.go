package clientadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/Hellseher/go-shellquote"
	"github.com/Masterminds/semver/v3"
	"github.com/avast/retry-go"
	"github.com/rs/zerolog/log"
)

// ExecClient talks to the torrent client by shelling out to Binary, per
// spec §6's wire contract. Transient failures (the client momentarily
// locked, a socket hiccup) are retried; a non-zero exit after retries is
// surfaced as *ExitError with captured stderr.
type ExecClient struct {
	Binary string

	// MinVersion, if set, gates AddTorrent behind a client version check
	// (some client versions accept a destination directory differently).
	MinVersion *semver.Version

	// DryRun, if true, logs the argv that would be run for mutating
	// operations (pause/resume/move/add) instead of running them, and
	// returns success. Read-only ListTorrents always runs for real since
	// a dry-run caller still needs the current torrent set to plan against.
	DryRun bool

	retryOpts []retry.Option
}

// NewExecClient returns an ExecClient with the corpus's standard retry
// policy: up to 3 attempts with the package's default exponential backoff.
func NewExecClient(binary string) *ExecClient {
	return &ExecClient{
		Binary:    binary,
		retryOpts: []retry.Option{retry.Attempts(3)},
	}
}

var _ Client = (*ExecClient)(nil)

func (c *ExecClient) ListTorrents(ctx context.Context) ([]ClientTorrent, error) {
	var torrents []wireTorrent
	if err := c.runJSON(ctx, &torrents, "list", "-k", "torrent", "-o", "json"); err != nil {
		return nil, err
	}

	var files []wireFile
	if err := c.runJSON(ctx, &files, "list", "-k", "file", "-o", "json"); err != nil {
		return nil, err
	}

	return joinTorrents(torrents, files)
}

func (c *ExecClient) PauseTorrent(ctx context.Context, id string) error {
	return c.runMutating(ctx, "pause", id)
}

func (c *ExecClient) ResumeTorrent(ctx context.Context, id string) error {
	return c.runMutating(ctx, "resume", id)
}

func (c *ExecClient) MoveTorrent(ctx context.Context, id, newBasePath string) error {
	if err := validatePath(newBasePath); err != nil {
		return err
	}
	return c.runMutating(ctx, "torrent", id, "move", "--skip-files", newBasePath)
}

func (c *ExecClient) AddTorrent(ctx context.Context, metainfoPath, seedRoot string) error {
	if c.MinVersion != nil {
		if err := c.checkMinVersion(ctx); err != nil {
			return err
		}
	}
	return c.runMutating(ctx, "add", metainfoPath, "--directory", seedRoot)
}

// checkMinVersion queries the client's reported version and fails fast if
// it is older than MinVersion, rather than letting an add-torrent call
// fail obscurely against a binary that doesn't understand --directory.
func (c *ExecClient) checkMinVersion(ctx context.Context) error {
	stdout, err := c.run(ctx, "--version")
	if err != nil {
		return fmt.Errorf("client adapter: checking version: %w", err)
	}

	v, err := semver.NewVersion(string(bytes.TrimSpace(stdout)))
	if err != nil {
		return fmt.Errorf("client adapter: parsing reported version %q: %w", stdout, err)
	}

	if v.LessThan(c.MinVersion) {
		return fmt.Errorf("client adapter: client version %s is older than required %s", v, c.MinVersion)
	}
	return nil
}

func (c *ExecClient) runMutating(ctx context.Context, args ...string) error {
	if c.DryRun {
		log.Info().Str("argv", shellquote.Join(append([]string{c.Binary}, args...)...)).Msg("client adapter: dry-run, not executing")
		return nil
	}
	_, err := c.run(ctx, args...)
	return err
}

func (c *ExecClient) runJSON(ctx context.Context, out interface{}, args ...string) error {
	stdout, err := c.run(ctx, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(stdout, out); err != nil {
		return fmt.Errorf("client adapter: parse %s output: %w", args[0], err)
	}
	return nil
}

func (c *ExecClient) run(ctx context.Context, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	err := retry.Do(func() error {
		stdout.Reset()
		stderr.Reset()

		cmd := exec.CommandContext(ctx, c.Binary, args...)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		log.Debug().Str("argv", shellquote.Join(append([]string{c.Binary}, args...)...)).Msg("client adapter: running")

		if err := cmd.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); ok {
				return &ExitError{Args: args, Stderr: stderr.String()}
			}
			return err
		}
		return nil
	}, append(append([]retry.Option(nil), c.retryOpts...), retry.LastErrorOnly(true))...)

	if err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}
