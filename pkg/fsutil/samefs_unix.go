// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !windows

package fsutil

import (
	"errors"
	"syscall"
)

// sameFilesystem compares device IDs from stat(2).
func sameFilesystem(path1, path2 string) (bool, error) {
	var st1, st2 syscall.Stat_t
	if err := syscall.Stat(path1, &st1); err != nil {
		return false, err
	}
	if err := syscall.Stat(path2, &st2); err != nil {
		return false, err
	}
	if st1.Dev == 0 || st2.Dev == 0 {
		return false, errors.New("fsutil: could not determine device id")
	}
	return st1.Dev == st2.Dev, nil
}
