// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build linux

package reflinktree

// CloneFile creates a copy-on-write reflink of src at dst, falling back
// through FICLONE then FICLONERANGE as cloneFile already does. dst must not
// exist. Exported so callers outside this package (the move planner's
// copy-and-unlink strategy) can attempt a reflink before falling back to a
// byte-for-byte copy.
func CloneFile(src, dst string) error {
	return cloneFile(src, dst)
}
