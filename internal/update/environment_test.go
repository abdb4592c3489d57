// Copyright (c) 2025, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package update

import (
	"context"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
)

// TestCanSelfUpdateRespectsWindowsGuard verifies that Updater.Run refuses self-update on Windows
func TestCanSelfUpdateRespectsWindowsGuard(t *testing.T) {
	updater := NewUpdater(Config{
		Repository: "torrentreconcile/xseed",
		Version:    "v1.0.0",
	})

	if runtime.GOOS == "windows" {
		_, err := updater.Run(context.Background())
		if !errors.Is(err, ErrSelfUpdateUnsupported) {
			t.Fatal("CRITICAL: Run() must refuse self-update on Windows")
		}
	}
}

// noopLogger returns a zerolog.Logger that discards all output
func noopLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
