package xlog

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupInstallsGlobalLoggerAtRequestedLevel(t *testing.T) {
	logger := Setup(Options{Level: "debug"})

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
}

func TestSetupDefaultsToInfoOnUnrecognizedLevel(t *testing.T) {
	Setup(Options{Level: "not-a-level"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupWritesRotatedLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xseed.log")

	logger := Setup(Options{Level: "info", LogFile: path})
	logger.Info().Msg("hello")

	assert.FileExists(t, path)
}

func TestParseLevelStrictRejectsUnknownValues(t *testing.T) {
	_, err := ParseLevelStrict("bogus")
	require.Error(t, err)

	lvl, err := ParseLevelStrict("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)
}
