// Copyright (c) 2025, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package update

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdater(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "valid config",
			config: Config{
				Repository: "torrentreconcile/xseed",
				Version:    "1.0.0",
			},
		},
		{
			name: "empty config",
			config: Config{
				Repository: "",
				Version:    "",
			},
		},
		{
			name: "prerelease version",
			config: Config{
				Repository: "torrentreconcile/xseed",
				Version:    "1.0.0-alpha.1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updater := NewUpdater(tt.config)

			require.NotNil(t, updater)
			assert.Equal(t, tt.config.Repository, updater.config.Repository)
			assert.Equal(t, tt.config.Version, updater.config.Version)
		})
	}
}

func TestUpdater_Run_InvalidVersion(t *testing.T) {
	updater := NewUpdater(Config{
		Repository: "torrentreconcile/xseed",
		Version:    "not-a-valid-semver",
	})

	ctx := context.Background()
	_, err := updater.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse version")
}
