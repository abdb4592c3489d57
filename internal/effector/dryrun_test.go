package effector

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunNeverTouchesDisk(t *testing.T) {
	var buf bytes.Buffer
	d := NewDryRun(&buf)

	ctx := context.Background()
	require.NoError(t, d.Mkdirp(ctx, "/does/not/exist"))
	require.NoError(t, d.Symlink(ctx, "/does/not/exist/link", "/does/not/exist/target"))
	require.NoError(t, d.Rename(ctx, "/does/not/exist/a", "/does/not/exist/b"))
	require.NoError(t, d.RemoveTree(ctx, "/does/not/exist"))

	out := buf.String()
	assert.Contains(t, out, "mkdirp")
	assert.Contains(t, out, "symlink")
	assert.Contains(t, out, "rename")
	assert.Contains(t, out, "remove_tree")

	_, err := os.Stat("/does/not/exist")
	assert.True(t, os.IsNotExist(err))
}

func TestDryRunDoesNotColorizeNonTerminalOutput(t *testing.T) {
	var buf bytes.Buffer
	d := NewDryRun(&buf)

	require.NoError(t, d.Mkdirp(context.Background(), "/tmp/x"))
	assert.NotContains(t, buf.String(), "\x1b[")
}
