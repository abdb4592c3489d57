// Copyright (c) 2025, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package pathutil sanitizes strings for use as a single path segment
// (directory or file name) across filesystems, including Windows' reserved
// device names and trailing-dot/space restrictions even when running on a
// POSIX host, since an organized library may later be shared onto one.
package pathutil

import "strings"

var illegalChars = []rune{'<', '>', ':', '"', '/', '\\', '|', '?', '*'}

var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// SanitizePathSegment strips characters illegal in a Windows path segment,
// trims trailing dots and spaces, and prefixes Windows reserved device
// names with an underscore. An input that sanitizes to empty becomes "_".
func SanitizePathSegment(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isIllegal(r) {
			continue
		}
		b.WriteRune(r)
	}

	result := strings.TrimRight(b.String(), " .")

	if windowsReservedNames[strings.ToUpper(result)] {
		result = "_" + result
	}

	if result == "" {
		return "_"
	}
	return result
}

func isIllegal(r rune) bool {
	for _, bad := range illegalChars {
		if r == bad {
			return true
		}
	}
	return false
}
