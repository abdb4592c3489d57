// Copyright (c) 2025, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package buildinfo exposes version metadata set at link time via
// -ldflags, mirroring the teacher's own buildinfo convention.
package buildinfo

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// These are overridden at build time via:
//
//	-ldflags "-X github.com/torrentreconcile/xseed/internal/buildinfo.Version=... \
//	  -X .../buildinfo.Commit=... -X .../buildinfo.Date=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// UserAgent identifies this build as "xseed/<version> (<os>; <arch>)". No
// request made by this module sets it as a header.
var UserAgent string

func init() {
	UserAgent = fmt.Sprintf("xseed/%s (%s; %s)", Version, runtime.GOOS, runtime.GOARCH)
}

// String renders version/commit/date as three human-readable lines.
func String() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild date: %s\n", Version, Commit, Date)
}

// JSON renders the same fields as a JSON object.
func JSON() ([]byte, error) {
	return json.Marshal(struct {
		Version string `json:"version"`
		Commit  string `json:"commit"`
		Date    string `json:"date"`
	}{Version, Commit, Date})
}
