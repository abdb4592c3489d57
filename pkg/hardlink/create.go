// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package hardlink

import (
	"fmt"
	"os"
)

// Create makes dst a new hard link to the same underlying file as src.
// Both paths must reside on the same filesystem; the caller is responsible
// for checking that first (e.g. via fsutil.SameFilesystem) if it wants a
// clearer error than whatever os.Link reports.
func Create(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		return fmt.Errorf("hardlink %q -> %q: %w", src, dst, err)
	}
	return nil
}

// SameFile reports whether a and b are hard links to the same underlying
// file, by comparing FileID rather than path string equality.
func SameFile(a, b os.FileInfo) bool {
	idA, _, errA := GetFileID(a, "")
	idB, _, errB := GetFileID(b, "")
	if errA != nil || errB != nil {
		return false
	}
	return idA == idB
}
