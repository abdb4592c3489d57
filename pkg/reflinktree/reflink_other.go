// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !linux

package reflinktree

import "errors"

// ErrUnsupportedPlatform is returned by CloneFile on platforms without an
// FICLONE-equivalent syscall wired up; SupportsReflink reports its text as
// the reason.
var ErrUnsupportedPlatform = errors.New("reflink cloning is not supported on this platform")

func SupportsReflink(dir string) (supported bool, reason string) {
	return false, ErrUnsupportedPlatform.Error()
}

func CloneFile(src, dst string) error {
	return ErrUnsupportedPlatform
}
