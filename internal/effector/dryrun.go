package effector

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ansi color codes used to annotate dry-run output when stdout is a
// terminal; not emitted otherwise (see paint) so piped/redirected output
// stays plain text.
const (
	ansiReset = "\x1b[0m"
	ansiCyan  = "\x1b[36m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

// DryRun prints each operation it's asked to perform instead of touching
// the filesystem, and always succeeds. Paths are colorized when Out is a
// terminal: the verb in cyan, the path being created/written in green, the
// path being removed in red.
type DryRun struct {
	Out      io.Writer
	colorize bool
}

func NewDryRun(out io.Writer) *DryRun {
	colorize := false
	if f, ok := out.(*os.File); ok {
		colorize = term.IsTerminal(int(f.Fd()))
	}
	return &DryRun{Out: out, colorize: colorize}
}

func (d *DryRun) paint(code, s string) string {
	if !d.colorize {
		return s
	}
	return code + s + ansiReset
}

func (d *DryRun) line(verb string, parts ...string) {
	fmt.Fprintf(d.Out, "%s %s\n", d.paint(ansiCyan, verb), joinSpace(parts))
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

func (d *DryRun) Mkdirp(_ context.Context, path string) error {
	d.line("mkdirp", d.paint(ansiGreen, path))
	return nil
}

func (d *DryRun) Symlink(_ context.Context, link, target string) error {
	d.line("symlink", d.paint(ansiGreen, link), "->", target)
	return nil
}

func (d *DryRun) CreateOrUpdateSymlink(_ context.Context, link, target string) error {
	d.line("create_or_update_symlink", d.paint(ansiGreen, link), "->", target)
	return nil
}

func (d *DryRun) Rename(_ context.Context, src, dst string) error {
	d.line("rename", src, "->", d.paint(ansiGreen, dst))
	return nil
}

func (d *DryRun) CopyTree(_ context.Context, src, dst string, progress func(uint64)) error {
	d.line("copy_tree", src, "->", d.paint(ansiGreen, dst))
	return nil
}

func (d *DryRun) CopyFile(_ context.Context, src, dst string, progress func(uint64)) error {
	d.line("copy_file", src, "->", d.paint(ansiGreen, dst))
	return nil
}

func (d *DryRun) RemoveFile(_ context.Context, path string) error {
	d.line("remove_file", d.paint(ansiRed, path))
	return nil
}

func (d *DryRun) RemoveTree(_ context.Context, path string) error {
	d.line("remove_tree", d.paint(ansiRed, path))
	return nil
}
