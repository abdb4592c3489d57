package main

import (
	"errors"
	"io"
	"os"

	"github.com/torrentreconcile/xseed/internal/clientadapter"
	"github.com/torrentreconcile/xseed/internal/effector"
)

// ErrClientBinaryRequired is returned when a subcommand needing a torrent
// client is run without --client-binary set.
var ErrClientBinaryRequired = errors.New("--client-binary is required")

// buildClient constructs the exec-based client adapter, wiring --dry-run
// through to its mutating operations per clientadapter.ExecClient's own
// dry-run convention.
func buildClient(flags *globalFlags) (clientadapter.Client, error) {
	if flags.clientBinary == "" {
		return nil, ErrClientBinaryRequired
	}
	c := clientadapter.NewExecClient(flags.clientBinary)
	c.DryRun = flags.dryRun
	return c, nil
}

// buildEffector returns a Live effector, or a DryRun effector narrating to
// stdout when --dry-run is set.
func buildEffector(flags *globalFlags, out io.Writer) effector.Effector {
	if flags.dryRun {
		if out == nil {
			out = os.Stdout
		}
		return effector.NewDryRun(out)
	}
	return effector.NewLive()
}
